package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/collector"
	"github.com/deckcite/deckcite/internal/pageref"
)

var (
	detachPage  string
	detachPrune bool
)

func init() {
	detachCmd.Flags().StringVar(&detachPage, "page", "", "Page to detach from (required)")
	detachCmd.Flags().BoolVar(&detachPrune, "prune", false, "Sweep unreferenced records afterwards")
	detachCmd.MarkFlagRequired("page")
	rootCmd.AddCommand(detachCmd)
}

var detachCmd = &cobra.Command{
	Use:   "detach <key>",
	Short: "Remove a citation from a page",
	Long: `Remove a citation key from a page's reference list. The stored
record survives until a prune sweep finds it unreferenced; pass
--prune to sweep immediately.

Example:
  deckcite detach Smith2020 --page p4 --prune`,
	Args: cobra.ExactArgs(1),
	RunE: runDetach,
}

func runDetach(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, s := mustOpenDeck()
	key := args[0]

	page, err := d.PageByID(ctx, detachPage)
	if err != nil {
		exitWithError(ExitNotFound, "%v", err)
	}

	removed, err := pageref.Remove(ctx, page, key)
	if err != nil {
		exitWithError(ExitDataError, "detaching citation: %v", err)
	}
	if !removed {
		exitWithError(ExitNotFound, "%s is not on page %s", key, detachPage)
	}

	pruned := 0
	if detachPrune {
		pruned, err = collector.Prune(ctx, d, s)
		if err != nil {
			exitWithError(ExitDataError, "pruning: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Detached %s from page %s\n", key, detachPage)
		if detachPrune {
			fmt.Printf("Pruned %d unreferenced records\n", pruned)
		}
	} else {
		outputJSON(StatusResponse{Status: "detached", Key: key, Page: detachPage, Count: pruned})
	}
	return nil
}
