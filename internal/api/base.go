package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/offdeal/bdr-client-go/internal/apierrors"
)

// HTTPClient is the transport capability every operation depends on.
// *http.Client satisfies it; tests substitute scripted doubles.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// newJSONRequest builds a request carrying an optional JSON body.
// Content-Type is set only when a body is present.
func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decodeJSON applies the response contract shared by every operation:
// a non-2xx status becomes an *apierrors.APIError whose message is the
// response body text (or "HTTP <code>" when the body is empty); a 2xx
// body is decoded into out. Body read failures during error handling
// degrade to an empty message, never a secondary error.
func decodeJSON(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			body = nil
		}
		return apierrors.New(resp.StatusCode, string(body))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// do issues the request and unwraps the response in one step.
func do(httpClient HTTPClient, req *http.Request, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}
