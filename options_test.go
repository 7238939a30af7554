package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// debug logging wraps transport; client still reaches the base transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("http://example.com",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithHTTPTimeout(2*time.Second),
		WithDebugLogging(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithHTTPClient_Nil(t *testing.T) {
	if _, err := New("http://example.com", WithHTTPClient(nil)); err == nil {
		t.Fatal("expected error for nil http client")
	}
}

func TestWithRetry_Validation(t *testing.T) {
	if _, err := New("http://example.com", WithRetry(1)); err == nil {
		t.Fatal("expected error for attempts < 2")
	}
	c, err := New("http://example.com", WithRetry(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.maxAttempts != 3 {
		t.Fatalf("maxAttempts not recorded: %d", c.maxAttempts)
	}
}

func TestWithUserAgent_Empty(t *testing.T) {
	if _, err := New("http://example.com", WithUserAgent("")); err == nil {
		t.Fatal("expected error for empty user agent")
	}
}
