package api

import (
	"context"
	"fmt"
	"net/http"
)

// Health pings the backend's health endpoint. A nil error means the
// service answered with a 2xx.
func Health(ctx context.Context, httpClient HTTPClient, baseURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/healthz", baseURL)
	req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return do(httpClient, req, nil)
}
