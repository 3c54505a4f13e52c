package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/collector"
)

func init() {
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove stored records no page references",
	Long: `Walk every page, union the referenced citation keys, and drop
store records absent from all pages. Safe to run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, s := mustOpenDeck()

	removed, err := collector.Prune(ctx, d, s)
	if err != nil {
		exitWithError(ExitDataError, "pruning: %v", err)
	}

	if humanOutput {
		fmt.Printf("Pruned %d unreferenced records\n", removed)
	} else {
		outputJSON(StatusResponse{Status: "pruned", Count: removed})
	}
	return nil
}
