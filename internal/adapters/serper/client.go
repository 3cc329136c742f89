// Package serper provides a minimal Serper.dev search client for web lookups
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "paychat/internal/platform/errors"
	"paychat/internal/platform/logger"
)

const (
	baseURLDefault = "https://google.serper.dev"
	defaultTimeout = 10 * time.Second

	// SelicQuery is the pinned query for the Selic rate lookup, scoped to the
	// central bank site so the first organic hit is authoritative
	SelicQuery = "taxa Selic atual site:bcb.gov.br"
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client posts search queries to the Serper API
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// Result is the first organic hit of a search
type Result struct {
	Snippet string
	Link    string
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("serper"),
		now:  time.Now,
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool { return c.opts.APIKey != "" }

type searchPayload struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type searchResponse struct {
	Organic []struct {
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic"`
}

// Search posts query and returns the first organic hit.
// Callers must check Configured first; an empty key is a programmer error here
func (c *Client) Search(ctx context.Context, query string) (Result, error) {
	if !c.Configured() {
		return Result{}, perr.Externalf("serper api key not configured")
	}

	body, err := json.Marshal(searchPayload{Q: query, Num: 1})
	if err != nil {
		return Result{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "serper marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return Result{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "serper new request")
	}
	req.Header.Set("X-API-KEY", c.opts.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return Result{}, perr.Wrapf(err, perr.ErrorCodeExternal, "serper request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("query", query).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("serper http response")

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, perr.Externalf("serper status %d: %s", resp.StatusCode, string(b))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, perr.Wrapf(err, perr.ErrorCodeExternal, "serper decode response")
	}
	if len(parsed.Organic) == 0 {
		return Result{}, perr.Externalf("serper returned no organic results")
	}
	hit := parsed.Organic[0]
	return Result{Snippet: hit.Snippet, Link: hit.Link}, nil
}
