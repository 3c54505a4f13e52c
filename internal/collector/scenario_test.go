package collector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deckcite/deckcite/internal/citation"
	"github.com/deckcite/deckcite/internal/deck"
	"github.com/deckcite/deckcite/internal/format"
	"github.com/deckcite/deckcite/internal/pageref"
	"github.com/deckcite/deckcite/internal/store"
)

// Full lifecycle: insert, attach, render, detach, prune.
func TestCitationLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "talk.deck.json")
	d, err := deck.Init(path, []string{"p1"})
	if err != nil {
		t.Fatalf("deck.Init: %v", err)
	}
	s := store.New(d)

	if err := s.Upsert(ctx, citation.Record{Key: "X1", Title: "Alpha"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	p1, err := d.PageByID(ctx, "p1")
	if err != nil {
		t.Fatalf("PageByID: %v", err)
	}
	if err := pageref.Add(ctx, p1, "X1"); err != nil {
		t.Fatalf("pageref.Add: %v", err)
	}

	// Render page 1
	keys, err := pageref.Keys(ctx, p1)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	records, err := s.GetMany(ctx, keys)
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	f := &format.Formatter{}
	segs, err := f.FormatList(ctx, records, format.Spec{Template: "{title}"}, 0)
	if err != nil {
		t.Fatalf("FormatList: %v", err)
	}
	if len(segs) != 1 || segs[0].Text != "Alpha" {
		t.Fatalf("rendered %+v, want single segment Alpha", segs)
	}

	// Detach and sweep
	removed, err := pageref.Remove(ctx, p1, "X1")
	if err != nil {
		t.Fatalf("pageref.Remove: %v", err)
	}
	if !removed {
		t.Fatal("Remove should report the key was present")
	}
	pruned, err := Prune(ctx, d, s)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}

	got, err := s.GetMany(ctx, []string{"X1"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if got[0] != nil {
		t.Error("X1 should be absent after prune")
	}
}
