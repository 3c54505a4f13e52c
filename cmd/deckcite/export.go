package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/citation"
	"github.com/deckcite/deckcite/internal/export"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [key]...",
	Short: "Export citations as BibTeX",
	Long: `Export the given citation records (or the whole store) as BibTeX.

Example:
  deckcite export Smith2020 Doe2019 > refs.bib`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, s := mustOpenDeck()

	var records []citation.Record
	if len(args) > 0 {
		found, err := s.GetMany(ctx, args)
		if err != nil {
			exitWithError(ExitDataError, "loading store: %v", err)
		}
		for i, rec := range found {
			if rec == nil {
				exitWithError(ExitNotFound, "citation not found: %s", args[i])
			}
			records = append(records, *rec)
		}
	} else {
		all, err := s.GetAll(ctx)
		if err != nil {
			exitWithError(ExitDataError, "loading store: %v", err)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			records = append(records, all[k])
		}
	}

	fmt.Print(export.ToBibTeXList(records))
	return nil
}
