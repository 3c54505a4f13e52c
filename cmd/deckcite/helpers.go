package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/deckcite/deckcite/internal/abbrev"
	"github.com/deckcite/deckcite/internal/config"
	"github.com/deckcite/deckcite/internal/crossref"
	"github.com/deckcite/deckcite/internal/deck"
	"github.com/deckcite/deckcite/internal/format"
	"github.com/deckcite/deckcite/internal/store"
)

// mustOpenDeck resolves the deck file from --deck or $DECKCITE_DECK
// and returns it with its record store.
func mustOpenDeck() (*deck.File, *store.RecordStore) {
	path := deckPath
	if path == "" {
		path = os.Getenv("DECKCITE_DECK")
	}
	if path == "" {
		exitWithError(ExitConfigError, "no deck file: pass --deck or set DECKCITE_DECK")
	}
	if _, err := os.Stat(path); err != nil {
		exitWithError(ExitConfigError, "deck file not found: %s", path)
	}
	d := deck.Open(path)
	return d, store.New(d)
}

// mustLoadConfig loads the global config.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// newCrossrefClient builds the bibliography client, honoring the
// configured polite-pool address. Network commands load .env first so
// CROSSREF_MAILTO can come from the environment.
func newCrossrefClient(cfg *config.Config) *crossref.Client {
	_ = godotenv.Load()
	var opts []crossref.ClientOption
	if cfg.Mailto != "" {
		opts = append(opts, crossref.WithMailto(cfg.Mailto))
	}
	return crossref.NewClient(opts...)
}

// newFormatter builds the citation formatter; when abbreviation
// lookups are enabled the returned closer must be called after use.
func newFormatter(cfg *config.Config) (*format.Formatter, func()) {
	f := &format.Formatter{}
	closer := func() {}
	if cfg.Abbreviate {
		if cachePath := cfg.CachePath(); cachePath != "" {
			svc, err := abbrev.Open(cachePath)
			if err == nil {
				f.Abbrev = svc.Lookup
				closer = func() { svc.Close() }
			}
			// A broken cache disables abbreviation rather than
			// failing the render.
		}
	}
	return f, closer
}
