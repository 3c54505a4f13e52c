package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/pageref"
)

var reorderPage string

func init() {
	reorderCmd.Flags().StringVar(&reorderPage, "page", "", "Page to reorder (required)")
	reorderCmd.MarkFlagRequired("page")
	rootCmd.AddCommand(reorderCmd)
}

var reorderCmd = &cobra.Command{
	Use:   "reorder <key>...",
	Short: "Set a page's citation order",
	Long: `Overwrite a page's reference list with the given keys in the given
order. The new list should be a permutation of the current one; this
is not validated.

Example:
  deckcite reorder Doe2019 Smith2020 --page p4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReorder,
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, _ := mustOpenDeck()

	page, err := d.PageByID(ctx, reorderPage)
	if err != nil {
		exitWithError(ExitNotFound, "%v", err)
	}
	if err := pageref.SetOrder(ctx, page, args); err != nil {
		exitWithError(ExitDataError, "reordering: %v", err)
	}

	if humanOutput {
		fmt.Printf("Page %s order: %s\n", reorderPage, strings.Join(args, ", "))
	} else {
		outputJSON(StatusResponse{Status: "reordered", Page: reorderPage, Count: len(args)})
	}
	return nil
}
