package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/crossref"
	"github.com/deckcite/deckcite/internal/pageref"
	"github.com/deckcite/deckcite/internal/pdf"
)

var pdfAddPage string

func init() {
	pdfAddCmd.Flags().StringVar(&pdfAddPage, "page", "", "Page to attach the citation to")
	pdfCmd.AddCommand(pdfAddCmd)
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Import citations from PDF files",
}

var pdfAddCmd = &cobra.Command{
	Use:   "add <file.pdf>",
	Short: "Import a citation from a PDF's DOI",
	Long: `Extract the DOI from a PDF's leading pages, fetch its metadata from
Crossref, and store it as a citation record. With --page, the citation
is also attached to that page.

Example:
  deckcite pdf add paper.pdf --page p7`,
	Args: cobra.ExactArgs(1),
	RunE: runPDFAdd,
}

func runPDFAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := mustLoadConfig()
	d, s := mustOpenDeck()
	file := args[0]

	doi, err := pdf.ExtractDOI(file)
	if err != nil {
		exitWithError(ExitError, "reading PDF: %v", err)
	}
	if doi == "" {
		exitWithError(ExitNotFound, "no DOI found in %s", file)
	}

	client := newCrossrefClient(cfg)
	rec, err := client.FetchDOI(ctx, doi)
	if err != nil {
		if crossref.IsNotFound(err) {
			exitWithError(ExitNotFound, "DOI %s not found in Crossref", doi)
		}
		exitWithError(ExitError, "fetching metadata: %v", err)
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		exitWithError(ExitDataError, "loading store: %v", err)
	}
	if existing := findByDOI(all, rec.DOI); existing != "" {
		rec.Key = existing
	} else {
		rec.Key = crossref.UniqueKey(all, rec.Key)
	}

	if err := s.Upsert(ctx, *rec); err != nil {
		exitWithError(ExitDataError, "storing citation: %v", err)
	}

	if pdfAddPage != "" {
		page, err := d.PageByID(ctx, pdfAddPage)
		if err != nil {
			exitWithError(ExitNotFound, "%v", err)
		}
		if err := pageref.Add(ctx, page, rec.Key); err != nil {
			exitWithError(ExitDataError, "attaching citation: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Imported %s\n", summarizeRecord(*rec))
		if pdfAddPage != "" {
			fmt.Printf("Attached to page %s\n", pdfAddPage)
		}
	} else {
		outputJSON(rec)
	}
	return nil
}
