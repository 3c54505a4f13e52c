// Package main provides the deckcite CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// deckPath is the deck file operated on; defaults to $DECKCITE_DECK.
var deckPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deckcite",
	Short: "Per-page citation manager for slide decks",
	Long: `deckcite attaches bibliographic citations to individual pages of a
slide deck and renders them as formatted text.

Citation records live in one de-duplicated store embedded in the deck
document; each page carries an ordered list of citation keys. Records
are fetched from Crossref, rendered through a configurable template
with bold/italic markup, and swept out of the store once no page
references them.

All commands output JSON by default; use --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", "", "Deck file to operate on (default $DECKCITE_DECK)")
	rootCmd.Version = Version
}
