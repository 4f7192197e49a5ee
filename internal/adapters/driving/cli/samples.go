package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var samplesRegistry string

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the merged sample registry",
	Long: `Prints every sample in the order dump processes them, one per line as
short name and dataset separated by a tab. A short name defined in both the
data and MC sections shows the MC dataset.`,
	Args: cobra.NoArgs,
	RunE: runSamples,
}

func init() {
	samplesCmd.Flags().StringVar(&samplesRegistry, "registry", "", "sample registry file (default from settings)")
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	path := settings.Registry.Path
	if samplesRegistry != "" {
		path = samplesRegistry
	}

	registry, err := registryService.Load(path, nil)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, sample := range registry.Entries() {
		fmt.Fprintf(out, "%s\t%s\n", sample.ShortName, sample.Dataset)
	}
	return nil
}
