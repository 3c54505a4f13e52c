package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/pageref"
)

var attachPage string

func init() {
	attachCmd.Flags().StringVar(&attachPage, "page", "", "Page to attach to (required)")
	attachCmd.MarkFlagRequired("page")
	rootCmd.AddCommand(attachCmd)
}

var attachCmd = &cobra.Command{
	Use:   "attach <key>",
	Short: "Attach a stored citation to a page",
	Long: `Append a citation key to a page's reference list. Attaching a key
already on the page is a no-op.

Example:
  deckcite attach Smith2020 --page p4`,
	Args: cobra.ExactArgs(1),
	RunE: runAttach,
}

func runAttach(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, _ := mustOpenDeck()
	key := args[0]

	page, err := d.PageByID(ctx, attachPage)
	if err != nil {
		exitWithError(ExitNotFound, "%v", err)
	}
	if err := pageref.Add(ctx, page, key); err != nil {
		exitWithError(ExitDataError, "attaching citation: %v", err)
	}

	if humanOutput {
		fmt.Printf("Attached %s to page %s\n", key, attachPage)
	} else {
		outputJSON(StatusResponse{Status: "attached", Key: key, Page: attachPage})
	}
	return nil
}
