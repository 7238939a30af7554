package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/offdeal/bdr-client-go/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the BDR engine backend. It holds the base URL and an
// *http.Client; it keeps no other state, so concurrent use is safe and
// calls impose no ordering on one another.
type Client struct {
	baseURL     string
	http        *http.Client
	userAgent   string
	maxAttempts int // >1 only when WithRetry was given
}

const defaultUserAgent = "bdr-client-go"

// New constructs a Client for the given base URL. Trailing slashes are
// stripped before path concatenation. Additional behavior is configured
// via functional options.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		userAgent: defaultUserAgent,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()
	return c, nil
}

// wrapTransport layers the client's transport: request-ID tagging on the
// outside, per-request metrics beneath it, then the optional retry layer.
// The debug transport, when enabled, already wraps whatever the caller
// supplied, so it stays closest to the wire.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.maxAttempts > 1 {
		base = &retryTransport{base: base, maxAttempts: c.maxAttempts}
	}
	base = &metricsTransport{base: base}
	c.http.Transport = &requestIDTransport{base: base, userAgent: c.userAgent}
}

// requestIDTransport tags every outgoing request with a fresh X-Request-Id
// (unless the caller set one) and the SDK user agent.
type requestIDTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if cloned.Header.Get("X-Request-Id") == "" {
		cloned.Header.Set("X-Request-Id", uuid.NewString())
	}
	if cloned.Header.Get("User-Agent") == "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Prospect operations - delegated to internal/api
// --------------------------------------------------------------------

// ListProspects retrieves every prospect, newest first. The request
// carries cache-bypass headers so the listing reflects current remote
// state even through intermediaries.
func (c *Client) ListProspects(ctx context.Context) ([]Prospect, error) {
	return api.ListProspects(ctx, c.http, c.baseURL)
}

// CreateProspect registers a new prospect.
func (c *Client) CreateProspect(ctx context.Context, req CreateProspectRequest) (*Prospect, error) {
	return api.CreateProspect(ctx, c.http, c.baseURL, req)
}

// GetProspect retrieves a single prospect by id.
func (c *Client) GetProspect(ctx context.Context, prospectID int) (*Prospect, error) {
	return api.GetProspect(ctx, c.http, c.baseURL, prospectID)
}

// --------------------------------------------------------------------
// Deck operations - delegated to internal/api
// --------------------------------------------------------------------

// GenerateDeck asks the backend to generate a pitch deck for the prospect.
func (c *Client) GenerateDeck(ctx context.Context, prospectID int) (*Deck, error) {
	return api.GenerateDeck(ctx, c.http, c.baseURL, prospectID)
}

// RenderDeck renders the deck to a PDF and returns it with pdf_url set.
func (c *Client) RenderDeck(ctx context.Context, deckID int) (*Deck, error) {
	return api.RenderDeck(ctx, c.http, c.baseURL, deckID)
}

// UpdateDeck replaces the deck's slides and, optionally, its title.
func (c *Client) UpdateDeck(ctx context.Context, deckID int, req UpdateDeckRequest) (*Deck, error) {
	return api.UpdateDeck(ctx, c.http, c.baseURL, deckID, req)
}

// --------------------------------------------------------------------
// Email operations - delegated to internal/api
// --------------------------------------------------------------------

// GenerateEmails asks the backend to generate the outreach email sequence
// for the prospect.
func (c *Client) GenerateEmails(ctx context.Context, prospectID int) (*EmailBatch, error) {
	return api.GenerateEmails(ctx, c.http, c.baseURL, prospectID)
}

// ListEmails retrieves the generated emails for a prospect.
func (c *Client) ListEmails(ctx context.Context, prospectID int) (*EmailBatch, error) {
	return api.ListEmails(ctx, c.http, c.baseURL, prospectID)
}

// UpdateEmail patches the subject and/or body of one email item.
func (c *Client) UpdateEmail(ctx context.Context, emailID int, req UpdateEmailRequest) (*EmailItem, error) {
	return api.UpdateEmail(ctx, c.http, c.baseURL, emailID, req)
}

// --------------------------------------------------------------------
// Service operations
// --------------------------------------------------------------------

// Health reports whether the backend answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return api.Health(ctx, c.http, c.baseURL)
}
