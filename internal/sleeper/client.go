package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Sleeper API root. All endpoints are
// read-only and unauthenticated.
const DefaultBaseURL = "https://api.sleeper.app/v1"

const defaultUserAgent = "sleeper-mcp/1.0"

// Config controls how the client reaches the Sleeper API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client wraps the read-only Sleeper Fantasy Football API. It keeps
// no state between calls: no caching, no retries, no throttling.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient constructs a client with the provided configuration,
// falling back to the public base URL and a 10s timeout.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: base, userAgent: ua, http: hc}
}

// getJSON performs a single GET against path and decodes the body into
// out. A non-2xx status reports found=false with a nil error so that
// callers treat absence as "not found"; transport and decode failures
// surface as errors.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return false, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}
