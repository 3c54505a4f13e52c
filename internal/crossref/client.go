// Package crossref is a rate-limited client for the Crossref REST API,
// the bibliography search and fetch backend.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/deckcite/deckcite/internal/citation"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps requests within Crossref's polite-pool guidance.
	RateLimit = 2.0

	// DefaultSearchLimit is the default result count for searches.
	DefaultSearchLimit = 10
)

// Client is a rate-limited HTTP client for the Crossref REST API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithMailto sets the contact address sent with each request, which
// routes traffic through Crossref's polite pool.
func WithMailto(addr string) ClientOption {
	return func(c *Client) {
		c.mailto = addr
	}
}

// NewClient creates a new Crossref client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if addr := os.Getenv("CROSSREF_MAILTO"); addr != "" {
		c.mailto = addr
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search queries Crossref for works matching the query string and
// returns at most limit citation records.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]citation.Record, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("rows", strconv.Itoa(limit))
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}

	body, err := c.get(ctx, "/works?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp worksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	records := make([]citation.Record, 0, len(resp.Message.Items))
	for _, w := range resp.Message.Items {
		records = append(records, RecordFromWork(w))
	}
	return records, nil
}

// FetchDOI retrieves the work with the given DOI as a citation record.
func (c *Client) FetchDOI(ctx context.Context, doi string) (*citation.Record, error) {
	path := "/works/" + url.PathEscape(doi)
	if c.mailto != "" {
		path += "?mailto=" + url.QueryEscape(c.mailto)
	}

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var resp workResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	rec := RecordFromWork(resp.Message)
	return &rec, nil
}

// get performs a rate-limited GET and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPIError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a
// problem.
func checkHTTPErrors(resp *http.Response) error {
	switch {
	case resp.StatusCode == 404:
		return fmt.Errorf("%w: status 404", ErrNotFound)
	case resp.StatusCode == 429:
		return fmt.Errorf("%w: status 429", ErrRateLimited)
	case resp.StatusCode >= 400:
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
	return nil
}
