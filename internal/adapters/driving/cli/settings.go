package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/samplelist/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the catalog endpoint, output directory, registry file
and history options stored in the configuration file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Set a single setting and save it to the configuration file.

Keys:
  catalog.url              catalog reader base URL
  catalog.rate_per_second  maximum catalog requests per second (0 = unlimited)
  catalog.timeout_seconds  per-request timeout (0 = none)
  output.dir               directory for list files
  output.create_dir        create the output directory if missing (true/false)
  registry.path            sample registry file
  history.enabled          record runs in the history database (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  URL: %s\n", settings.Catalog.URL)
	cmd.Printf("  Rate limit: %s\n", describeRate(settings.Catalog.RatePerSecond))
	cmd.Printf("  Timeout: %s\n", describeTimeout(settings.Catalog.TimeoutSeconds))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.Output.Dir)
	cmd.Printf("  Create directory: %t\n", settings.Output.CreateDir)
	cmd.Println()

	cmd.Println("[Registry]")
	cmd.Printf("  Path: %s\n", settings.Registry.Path)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %t\n", settings.History.Enabled)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

func describeRate(perSecond float64) string {
	if perSecond <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%g requests/s", perSecond)
}

func describeTimeout(seconds int) string {
	if seconds <= 0 {
		return "none"
	}
	return fmt.Sprintf("%ds", seconds)
}
