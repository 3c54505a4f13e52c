// Package collector removes stored citation records that no page
// references anymore. There is no automatic reference counting; the
// sweep is explicit, full-document, and idempotent so it stays correct
// when other writers mutate page lists between calls.
package collector

import (
	"context"
	"fmt"

	"github.com/deckcite/deckcite/internal/deck"
	"github.com/deckcite/deckcite/internal/pageref"
	"github.com/deckcite/deckcite/internal/store"
)

// Prune walks every page of the document, unions the referenced keys,
// and drops store records absent from every page. It returns the
// number of records removed; a second call with no new removals
// returns 0.
func Prune(ctx context.Context, doc deck.Document, s *store.RecordStore) (int, error) {
	pages, err := doc.Pages(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing pages: %w", err)
	}

	used := make(map[string]bool)
	for _, page := range pages {
		keys, err := pageref.Keys(ctx, page)
		if err != nil {
			// Best effort: a page whose metadata cannot be read
			// contributes nothing rather than aborting the sweep.
			continue
		}
		for _, k := range keys {
			used[k] = true
		}
	}

	return s.Retain(ctx, used)
}
