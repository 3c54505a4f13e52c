package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Delete a citation record from the store",
	Long: `Delete a record from the citation store. Pages still listing the
key keep it; the key renders as missing until detached.

Example:
  deckcite remove Smith2020`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, s := mustOpenDeck()
	key := args[0]

	removed, err := s.Remove(ctx, key)
	if err != nil {
		exitWithError(ExitDataError, "removing citation: %v", err)
	}
	if !removed {
		exitWithError(ExitNotFound, "citation not found: %s", key)
	}

	if humanOutput {
		fmt.Printf("Removed %s\n", key)
	} else {
		outputJSON(StatusResponse{Status: "removed", Key: key})
	}
	return nil
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire citation store",
	Long: `Delete the deck's citation block. Page reference lists are left in
place and render as missing.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, s := mustOpenDeck()

	if err := s.Clear(ctx); err != nil {
		exitWithError(ExitDataError, "clearing store: %v", err)
	}

	if humanOutput {
		fmt.Println("Cleared citation store")
	} else {
		outputJSON(StatusResponse{Status: "cleared"})
	}
	return nil
}
