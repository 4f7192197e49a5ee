package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
	"github.com/custodia-labs/samplelist/internal/logger"
)

var (
	dumpRegistry  string
	dumpOutput    string
	dumpCreateDir bool
	dumpOnly      []string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the file list of every sample",
	Long: `Queries the catalog for each sample in the registry, data samples first,
and writes <output>/<sample>.txt with one XRootD URL per line.

Samples are processed one at a time. The first failure stops the run and
later samples are not written.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpRegistry, "registry", "", "sample registry file (default from settings)")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "output directory (default from settings)")
	dumpCmd.Flags().BoolVar(&dumpCreateDir, "create-dir", false, "create the output directory if missing")
	dumpCmd.Flags().StringSliceVar(&dumpOnly, "only", nil, "only dump the named samples")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}
	if newDumpService == nil {
		return errors.New("dump service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	registryPath := settings.Registry.Path
	if dumpRegistry != "" {
		registryPath = dumpRegistry
	}
	registry, err := registryService.Load(registryPath, dumpOnly)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	output := settings.Output
	if dumpOutput != "" {
		output.Dir = dumpOutput
	}
	if dumpCreateDir {
		output.CreateDir = true
	}

	service, err := newDumpService(output)
	if err != nil {
		return fmt.Errorf("failed to create dump service: %w", err)
	}

	run, err := service.Dump(cmd.Context(), registry, driving.DumpOptions{
		Progress: func(sample domain.Sample) {
			fmt.Fprintf(cmd.OutOrStdout(), "Saving path to files for sample = %s\n", sample.Dataset)
		},
	})
	if err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}

	logger.Info("Wrote %d files for %d samples into %s (run %s)",
		run.TotalFiles(), len(run.Samples), run.OutputDir, run.ID)
	return nil
}
