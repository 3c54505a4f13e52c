package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/citation"
	"github.com/deckcite/deckcite/internal/format"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a single citation record by key",
	Long: `Get a single citation record by its key.

Example:
  deckcite get Smith2020`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, s := mustOpenDeck()
	key := args[0]

	records, err := s.GetMany(ctx, []string{key})
	if err != nil {
		exitWithError(ExitDataError, "loading store: %v", err)
	}
	if records[0] == nil {
		exitWithError(ExitNotFound, "citation not found: %s", key)
	}

	if humanOutput {
		printRecordDetail(*records[0])
	} else {
		outputJSON(records[0])
	}
	return nil
}

func printRecordDetail(rec citation.Record) {
	fmt.Println(rec.Key)
	fmt.Println()
	fmt.Printf("Title:    %s\n", rec.Title)
	if creators := format.FormatCreators(rec.Creators); creators != format.NoAuthor {
		fmt.Printf("Creators: %s\n", creators)
	}
	if rec.PublicationTitle != "" {
		fmt.Printf("Journal:  %s", rec.PublicationTitle)
		if rec.JournalAbbreviation != "" {
			fmt.Printf(" (%s)", rec.JournalAbbreviation)
		}
		fmt.Println()
	}
	if rec.Date != "" {
		fmt.Printf("Date:     %s\n", rec.Date)
	}
	if rec.Volume != "" || rec.Pages != "" {
		fmt.Printf("Cite:     vol. %s, pp. %s\n", rec.Volume, rec.Pages)
	}
	if rec.DOI != "" {
		fmt.Printf("DOI:      %s\n", rec.DOI)
	}
	if rec.URL != "" {
		fmt.Printf("URL:      %s\n", rec.URL)
	}
	if rec.AbstractNote != "" {
		fmt.Println()
		fmt.Println("Abstract:")
		fmt.Printf("  %s\n", rec.AbstractNote)
	}
}
