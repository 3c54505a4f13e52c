package abbrev

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func newTestService(t *testing.T, handler http.Handler, opts ...Option) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "abbrev.db")
	opts = append([]Option{WithBaseURL(srv.URL + "/")}, opts...)
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, srv
}

func TestLookupFetchesAndCaches(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("J. Theor. Biol.\n"))
	}))

	got, err := s.Lookup(ctx, "Journal of Theoretical Biology")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "J. Theor. Biol." {
		t.Errorf("Lookup = %q", got)
	}

	// Second call hits the cache, not the service
	got, err = s.Lookup(ctx, "Journal of Theoretical Biology")
	if err != nil {
		t.Fatalf("Lookup (cached): %v", err)
	}
	if got != "J. Theor. Biol." {
		t.Errorf("cached Lookup = %q", got)
	}
	if calls.Load() != 1 {
		t.Errorf("service called %d times, want 1", calls.Load())
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("J. Ex."))
	}))

	if _, err := s.Lookup(ctx, "Journal of Examples"); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := s.Lookup(ctx, "JOURNAL OF EXAMPLES"); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("case variants should share one cache entry, got %d calls", calls.Load())
	}
}

func TestLookupTTLExpiry(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("J. Ex."))
	}), WithTTL(time.Nanosecond))

	if _, err := s.Lookup(ctx, "Journal of Examples"); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := s.Lookup(ctx, "Journal of Examples"); err != nil {
		t.Fatalf("Lookup (stale): %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("stale entry should refetch, got %d calls", calls.Load())
	}
}

func TestLookupUnknownTitle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	got, err := s.Lookup(ctx, "Obscure Bulletin")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "" {
		t.Errorf("unknown title should yield empty abbreviation, got %q", got)
	}
}

func TestLookupEchoedTitle(t *testing.T) {
	// The service echoes the input when it cannot abbreviate.
	ctx := context.Background()
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Nature"))
	}))

	got, err := s.Lookup(ctx, "Nature")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "" {
		t.Errorf("echoed title should yield empty abbreviation, got %q", got)
	}
}

func TestLookupEmptyTitle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("service should not be called for empty titles")
	}))

	got, err := s.Lookup(ctx, "   ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "" {
		t.Errorf("empty title should yield empty abbreviation, got %q", got)
	}
}
