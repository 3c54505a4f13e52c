package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/citation"
	"github.com/deckcite/deckcite/internal/pageref"
)

var listPage string

func init() {
	listCmd.Flags().StringVar(&listPage, "page", "", "List only the citations on this page, in render order")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored citations",
	Long: `List all citation records in the store, or with --page the ordered
reference list of one page. Page entries whose record is missing from
the store are marked.

Example:
  deckcite list --page p4`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// PageEntry is one slot of a page's reference list.
type PageEntry struct {
	Key     string           `json:"key"`
	Missing bool             `json:"missing,omitempty"`
	Record  *citation.Record `json:"record,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, s := mustOpenDeck()

	if listPage == "" {
		all, err := s.GetAll(ctx)
		if err != nil {
			exitWithError(ExitDataError, "loading store: %v", err)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		if humanOutput {
			for _, k := range keys {
				fmt.Println(summarizeRecord(all[k]))
			}
		} else {
			records := make([]citation.Record, 0, len(keys))
			for _, k := range keys {
				records = append(records, all[k])
			}
			outputJSON(records)
		}
		return nil
	}

	page, err := d.PageByID(ctx, listPage)
	if err != nil {
		exitWithError(ExitNotFound, "%v", err)
	}
	keys, err := pageref.Keys(ctx, page)
	if err != nil {
		exitWithError(ExitDataError, "reading page references: %v", err)
	}
	records, err := s.GetMany(ctx, keys)
	if err != nil {
		exitWithError(ExitDataError, "loading store: %v", err)
	}

	entries := make([]PageEntry, len(keys))
	for i, k := range keys {
		entries[i] = PageEntry{Key: k, Missing: records[i] == nil, Record: records[i]}
	}

	if humanOutput {
		for i, e := range entries {
			if e.Missing {
				fmt.Printf("%d. %s (missing from store)\n", i+1, e.Key)
			} else {
				fmt.Printf("%d. %s\n", i+1, summarizeRecord(*e.Record))
			}
		}
	} else {
		outputJSON(entries)
	}
	return nil
}
