// Package abbrev resolves journal-title abbreviations via an external
// lookup service, memoized in a local sqlite cache keyed by exact
// case-insensitive title.
package abbrev

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
	_ "modernc.org/sqlite"
)

const (
	// BaseURL is the LTWA abbreviation service endpoint. A GET of
	// BaseURL + title returns the abbreviated form as plain text.
	BaseURL = "https://abbreviso.toolforge.org/abbreviso/a/"

	// DefaultTTL bounds how long a cached abbreviation is trusted.
	DefaultTTL = 24 * time.Hour

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 15 * time.Second

	// RateLimit throttles requests to the shared service.
	RateLimit = 5.0
)

// Service looks up journal abbreviations with a cache-first policy.
type Service struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	db         *sql.DB
	ttl        time.Duration
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Service) {
		s.httpClient = hc
	}
}

// WithBaseURL sets a custom service URL (for testing).
func WithBaseURL(u string) Option {
	return func(s *Service) {
		s.baseURL = u
	}
}

// WithTTL overrides the cache entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.ttl = ttl
	}
}

// Open creates a Service backed by a sqlite cache at cachePath,
// creating the database and schema as needed.
func Open(cachePath string, opts ...Option) (*Service, error) {
	db, err := sql.Open("sqlite", cachePath)
	if err != nil {
		return nil, fmt.Errorf("opening abbreviation cache: %w", err)
	}

	s := &Service{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		db:         db,
		ttl:        DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the cache database.
func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) ensureSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS abbreviations (
			title TEXT PRIMARY KEY,
			abbrev TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating abbreviation cache schema: %w", err)
	}
	return nil
}

// Lookup returns the abbreviation for an exact publication title,
// consulting the cache first. An unknown title yields "", not an
// error; transport failures are returned to the caller.
func (s *Service) Lookup(ctx context.Context, title string) (string, error) {
	key := normalizeTitle(title)
	if key == "" {
		return "", nil
	}

	if abbrev, ok, err := s.cached(key); err != nil {
		return "", err
	} else if ok {
		return abbrev, nil
	}

	abbrev, err := s.fetch(ctx, title)
	if err != nil {
		return "", err
	}

	if err := s.storeEntry(key, abbrev); err != nil {
		return "", err
	}
	return abbrev, nil
}

// cached returns a fresh cache entry for key, if any.
func (s *Service) cached(key string) (string, bool, error) {
	var abbrev string
	var fetchedAt int64
	err := s.db.QueryRow(
		"SELECT abbrev, fetched_at FROM abbreviations WHERE title = ?", key,
	).Scan(&abbrev, &fetchedAt)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying abbreviation cache: %w", err)
	}
	if s.now().Sub(time.Unix(fetchedAt, 0)) >= s.ttl {
		return "", false, nil // Stale entry, refetch
	}
	return abbrev, true, nil
}

func (s *Service) storeEntry(key, abbrev string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO abbreviations (title, abbrev, fetched_at) VALUES (?, ?, ?)",
		key, abbrev, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("updating abbreviation cache: %w", err)
	}
	return nil
}

// fetch asks the remote service for an abbreviation. A 404 means the
// title has no known abbreviation and yields "".
func (s *Service) fetch(ctx context.Context, title string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+url.PathEscape(title), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching abbreviation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("abbreviation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading abbreviation response: %w", err)
	}

	abbrev := strings.TrimSpace(string(body))
	// The service echoes the input when it has nothing better.
	if strings.EqualFold(abbrev, title) {
		return "", nil
	}
	return abbrev, nil
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
