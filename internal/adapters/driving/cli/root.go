package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
	"github.com/custodia-labs/samplelist/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	configDir string
	verbose   bool
)

// DumpServiceFactory builds a dump service that writes into the given output.
// Commands call it after applying flag overrides to the stored settings.
type DumpServiceFactory func(output domain.OutputSettings) (driving.DumpService, error)

// Services holds everything the commands need.
type Services struct {
	Settings driving.SettingsService
	History  driving.HistoryService
	Registry driving.RegistryService
	NewDump  DumpServiceFactory

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// Bootstrap builds the services once the persistent flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

// Service instances used by the commands.
var (
	settingsService driving.SettingsService
	historyService  driving.HistoryService
	registryService driving.RegistryService
	newDumpService  DumpServiceFactory
	closeServices   func() error
)

var bootstrap Bootstrap

var rootCmd = &cobra.Command{
	Use:   "samplelist",
	Short: "Dump CMS dataset file lists for analysis jobs",
	Long: `samplelist queries the CMS dataset bookkeeping service for the files of
every sample in a registry and writes one list file per sample.

Each line of <output>/<sample>.txt is an XRootD URL through the global
redirector, ready to be passed to an analysis executable.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.samplelist)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services from configuration.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs the services used by the commands.
func SetServices(s *Services) {
	settingsService = s.Settings
	historyService = s.History
	registryService = s.Registry
	newDumpService = s.NewDump
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("closing services: %v", cerr)
		}
	}
	return err
}

// initServices runs before every command. Services already installed
// through SetServices are kept.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || settingsService != nil {
		return nil
	}

	services, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// currentSettings returns the stored settings, or the defaults when no
// settings service is configured.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}
