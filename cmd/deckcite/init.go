package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/deck"
)

var initPages int

func init() {
	initCmd.Flags().IntVar(&initPages, "pages", 1, "Number of pages in the new deck")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Create a new deck file",
	Long: `Create a new deck file with the given number of pages.

Example:
  deckcite init talk.deck.json --pages 12`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if initPages < 1 {
		exitWithError(ExitError, "--pages must be at least 1")
	}

	ids := make([]string, initPages)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}

	if _, err := deck.Init(path, ids); err != nil {
		exitWithError(ExitError, "creating deck: %v", err)
	}

	if humanOutput {
		fmt.Printf("Created %s with %d pages\n", path, initPages)
	} else {
		outputJSON(StatusResponse{Status: "created", Path: path, Count: initPages})
	}
	return nil
}
