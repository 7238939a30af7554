package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the transport stack is installed, so
// transport-related options (like debug logging) end up underneath the
// request-ID and metrics wrappers. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPClient replaces the underlying *http.Client entirely. Useful
// for custom TLS configuration or scripted transports in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake, redirects, and reading
// the response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and payloads in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithRetry enables retrying of recoverable failures (5xx, 408, 429, and
// network errors) with exponential backoff, up to maxAttempts total
// attempts per request. Retries are off unless this option is given; by
// default every operation issues exactly one request.
func WithRetry(maxAttempts int) Option {
	return func(c *Client) error {
		if maxAttempts < 2 {
			return fmt.Errorf("retry attempts must be >= 2")
		}
		c.maxAttempts = maxAttempts
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		c.userAgent = ua
		return nil
	}
}
