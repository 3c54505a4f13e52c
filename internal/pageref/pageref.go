// Package pageref maintains the ordered list of citation keys attached
// to each page, persisted as one comma-joined metadata value per page.
// Keys are assumed not to contain the separator; a key listed on a
// page need not exist in the record store.
package pageref

import (
	"context"
	"strings"

	"github.com/deckcite/deckcite/internal/deck"
)

// MetadataKey is the reserved per-page metadata slot.
const MetadataKey = "deckcite:refs"

// Separator joins citation keys in the persisted value.
const Separator = ","

// Keys returns the page's citation keys in render order. An absent or
// empty slot yields an empty list, never an error.
func Keys(ctx context.Context, page deck.Page) ([]string, error) {
	value, err := page.Metadata(ctx, MetadataKey)
	if err != nil {
		return nil, err
	}
	return decode(value), nil
}

// Add appends a key to the page's list. Adding a key already present
// is a no-op.
func Add(ctx context.Context, page deck.Page, key string) error {
	keys, err := Keys(ctx, page)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	return write(ctx, page, append(keys, key))
}

// Remove drops a key from the page's list. It returns true iff the
// key was present.
func Remove(ctx context.Context, page deck.Page, key string) (bool, error) {
	keys, err := Keys(ctx, page)
	if err != nil {
		return false, err
	}
	kept := keys[:0:0]
	found := false
	for _, k := range keys {
		if k == key {
			found = true
			continue
		}
		kept = append(kept, k)
	}
	if !found {
		return false, nil
	}
	if err := write(ctx, page, kept); err != nil {
		return false, err
	}
	return true, nil
}

// SetOrder unconditionally overwrites the page's list. The caller is
// responsible for passing a permutation of the existing keys when
// reordering.
func SetOrder(ctx context.Context, page deck.Page, keys []string) error {
	return write(ctx, page, keys)
}

func write(ctx context.Context, page deck.Page, keys []string) error {
	// An empty list clears the slot rather than storing "".
	return page.SetMetadata(ctx, MetadataKey, strings.Join(keys, Separator))
}

func decode(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, Separator)
	keys := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
