package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/pageref"
)

var (
	renderPage  string
	renderStart int
)

func init() {
	renderCmd.Flags().StringVar(&renderPage, "page", "", "Page to render (required)")
	renderCmd.Flags().IntVar(&renderStart, "start", -1, "Numbering start offset (default from config)")
	renderCmd.MarkFlagRequired("page")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a page's citations as styled text segments",
	Long: `Format a page's citation list through the configured template.
Keys missing from the store are silently skipped. JSON output is the
segment list; --human flattens it with **bold** and _italic_ markers.

Example:
  deckcite render --page p4 --human`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := mustLoadConfig()
	d, s := mustOpenDeck()

	page, err := d.PageByID(ctx, renderPage)
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

	start := renderStart
	if start < 0 {
		start = cfg.StartIndex
	}

	formatter, closeFormatter := newFormatter(cfg)
	defer closeFormatter()

	segments, err := formatter.FormatList(ctx, records, cfg.FormatSpec(), start)
	if err != nil {
		exitWithError(ExitDataError, "formatting: %v", err)
	}

	if humanOutput {
		fmt.Println(renderSegmentsPlain(segments))
	} else {
		outputJSON(segments)
	}
	return nil
}
