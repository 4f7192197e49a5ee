package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/samplelist/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent dump runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the samples written by a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for i := range runs {
		cmd.Printf("%s  %-9s  %s  %s\n",
			runs[i].ID,
			runs[i].Status,
			formatTimestamp(runs[i].StartedAt),
			runs[i].OutputDir)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	run, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run not found: %s", args[0])
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run:      %s\n", run.ID)
	cmd.Printf("Status:   %s\n", run.Status)
	cmd.Printf("Catalog:  %s\n", run.CatalogURL)
	cmd.Printf("Output:   %s\n", run.OutputDir)
	cmd.Printf("Started:  %s\n", formatTimestamp(run.StartedAt))
	if !run.FinishedAt.IsZero() {
		cmd.Printf("Finished: %s (%s)\n", formatTimestamp(run.FinishedAt), run.Duration().Round(time.Millisecond))
	}
	if run.Error != "" {
		cmd.Printf("Error:    %s\n", run.Error)
	}
	cmd.Println()

	if len(run.Samples) == 0 {
		cmd.Println("No samples written.")
		return nil
	}

	cmd.Printf("Samples (%d, %d files):\n", len(run.Samples), run.TotalFiles())
	for _, s := range run.Samples {
		cmd.Printf("  %-30s %6d  %s\n", s.ShortName, s.Files, s.OutputPath)
	}
	return nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
