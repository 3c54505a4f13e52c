package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/format"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results (default from config)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the bibliography service",
	Long: `Search Crossref for works matching a query.

Example:
  deckcite search "adaptive immune repertoire"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	limit := searchLimit
	if limit <= 0 {
		limit = cfg.SearchLimit
	}

	client := newCrossrefClient(cfg)
	query := joinArgs(args)
	records, err := client.Search(cmd.Context(), query, limit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}
	if len(records) == 0 {
		exitWithError(ExitNotFound, "no results for %q", query)
	}

	if humanOutput {
		for i, rec := range records {
			fmt.Printf("%d. %s\n", i+1, summarizeRecord(rec))
			if creators := format.FormatCreators(rec.Creators); creators != format.NoAuthor {
				fmt.Printf("   %s\n", creators)
			}
			if rec.PublicationTitle != "" {
				fmt.Printf("   %s\n", rec.PublicationTitle)
			}
			fmt.Println()
		}
	} else {
		outputJSON(records)
	}
	return nil
}

func joinArgs(args []string) string {
	query := args[0]
	for _, a := range args[1:] {
		query += " " + a
	}
	return query
}
