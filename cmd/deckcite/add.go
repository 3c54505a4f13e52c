package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/citation"
	"github.com/deckcite/deckcite/internal/crossref"
	"github.com/deckcite/deckcite/internal/pageref"
)

var addPage string

func init() {
	addCmd.Flags().StringVar(&addPage, "page", "", "Page to attach the citation to")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <query>",
	Short: "Add the best search match to the deck's citation store",
	Long: `Search Crossref and store the first match as a citation record.
With --page, the citation is also attached to that page.

Example:
  deckcite add "felsenstein 1981 evolutionary trees" --page p4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := mustLoadConfig()
	d, s := mustOpenDeck()

	client := newCrossrefClient(cfg)
	query := joinArgs(args)
	records, err := client.Search(ctx, query, 1)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}
	if len(records) == 0 {
		exitWithError(ExitNotFound, "no results for %q", query)
	}

	rec := records[0]

	// Re-searching an already stored work must update the existing
	// record, not mint a new key.
	all, err := s.GetAll(ctx)
	if err != nil {
		exitWithError(ExitDataError, "loading store: %v", err)
	}
	if existing := findByDOI(all, rec.DOI); existing != "" {
		rec.Key = existing
	} else {
		rec.Key = crossref.UniqueKey(all, rec.Key)
	}

	if err := s.Upsert(ctx, rec); err != nil {
		exitWithError(ExitDataError, "storing citation: %v", err)
	}

	if addPage != "" {
		page, err := d.PageByID(ctx, addPage)
		if err != nil {
			exitWithError(ExitNotFound, "%v", err)
		}
		if err := pageref.Add(ctx, page, rec.Key); err != nil {
			exitWithError(ExitDataError, "attaching citation: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Added %s\n", summarizeRecord(rec))
		if addPage != "" {
			fmt.Printf("Attached to page %s\n", addPage)
		}
	} else {
		outputJSON(rec)
	}
	return nil
}

// findByDOI returns the key of a stored record with the given DOI, or "".
func findByDOI(all map[string]citation.Record, doi string) string {
	if doi == "" {
		return ""
	}
	for key, rec := range all {
		if rec.DOI == doi {
			return key
		}
	}
	return ""
}
