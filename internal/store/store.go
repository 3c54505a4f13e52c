// Package store persists the document-wide citation record collection
// inside one document-scoped data block. The host only offers
// whole-blob read/write, so every operation materializes the full
// collection in memory and mutations rewrite the entire block; there
// are no partial writes.
package store

import (
	"context"

	"github.com/deckcite/deckcite/internal/citation"
	"github.com/deckcite/deckcite/internal/deck"
)

// BlockName is the reserved identifier of the citation data block.
const BlockName = "deckcite:citations"

// RecordStore is the single owner of canonical citation data for one
// document. Construct one per document session and pass it explicitly.
type RecordStore struct {
	doc deck.Document
}

// New returns a RecordStore over the given document.
func New(doc deck.Document) *RecordStore {
	return &RecordStore{doc: doc}
}

// load reads and decodes the full persisted block.
func (s *RecordStore) load(ctx context.Context) (block, error) {
	value, err := s.doc.Block(ctx, BlockName)
	if err != nil {
		return block{}, &IOError{Op: "read", Err: err}
	}
	b, err := decodeBlock(value)
	if err != nil {
		return block{}, &IOError{Op: "read", Err: err}
	}
	return b, nil
}

// persist encodes and writes the full block.
func (s *RecordStore) persist(ctx context.Context, b block) error {
	value, err := encodeBlock(b)
	if err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if err := s.doc.SetBlock(ctx, BlockName, value); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Upsert inserts a record, replacing any existing record with the same
// key. The replaced record moves to the tail of the underlying list;
// list order carries no meaning beyond serialization.
func (s *RecordStore) Upsert(ctx context.Context, rec citation.Record) error {
	b, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := b.Records[:0:0]
	for _, r := range b.Records {
		if r.Key != rec.Key {
			kept = append(kept, r)
		}
	}
	b.Records = append(kept, rec)
	return s.persist(ctx, b)
}

// GetAll returns every stored record keyed by citation key, rebuilt
// from persisted state on each call.
func (s *RecordStore) GetAll(ctx context.Context) (map[string]citation.Record, error) {
	b, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	all := make(map[string]citation.Record, len(b.Records))
	for _, r := range b.Records {
		all[r.Key] = r
	}
	return all, nil
}

// GetMany returns the records for the given keys in input order, with
// nil entries for keys absent from the store. Unknown keys are never
// an error.
func (s *RecordStore) GetMany(ctx context.Context, keys []string) ([]*citation.Record, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*citation.Record, len(keys))
	for i, key := range keys {
		if r, ok := all[key]; ok {
			rec := r
			out[i] = &rec
		}
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *RecordStore) Count(ctx context.Context) (int, error) {
	b, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(b.Records), nil
}

// Remove deletes the record with the given key. It returns true iff a
// record with that key existed.
func (s *RecordStore) Remove(ctx context.Context, key string) (bool, error) {
	b, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	kept := b.Records[:0:0]
	found := false
	for _, r := range b.Records {
		if r.Key == key {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	b.Records = kept
	if err := s.persist(ctx, b); err != nil {
		return false, err
	}
	return true, nil
}

// Retain keeps only records whose key is in used and returns the
// number of records dropped. The block is rewritten only when the
// filtered collection differs from the original.
func (s *RecordStore) Retain(ctx context.Context, used map[string]bool) (int, error) {
	b, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	kept := b.Records[:0:0]
	for _, r := range b.Records {
		if used[r.Key] {
			kept = append(kept, r)
		}
	}
	removed := len(b.Records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	b.Records = kept
	if err := s.persist(ctx, b); err != nil {
		return 0, err
	}
	return removed, nil
}

// Clear deletes the entire persisted block.
func (s *RecordStore) Clear(ctx context.Context) error {
	if err := s.doc.DeleteBlock(ctx, BlockName); err != nil {
		return &IOError{Op: "delete", Err: err}
	}
	return nil
}
