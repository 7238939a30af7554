package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/offdeal/bdr-client-go/internal/types"
)

// ListProspects retrieves every prospect, newest first. Cache-bypass
// headers are set so the listing always reflects current remote state.
func ListProspects(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Prospect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/prospects", baseURL)
	req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	var prospects []types.Prospect
	if err := do(httpClient, req, &prospects); err != nil {
		return nil, err
	}
	return prospects, nil
}

// CreateProspect registers a new prospect.
func CreateProspect(ctx context.Context, httpClient HTTPClient, baseURL string, reqBody types.CreateProspectRequest) (*types.Prospect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCompanyName(reqBody.CompanyName); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/prospects", baseURL)
	req, err := newJSONRequest(ctx, http.MethodPost, url, reqBody)
	if err != nil {
		return nil, err
	}
	var p types.Prospect
	if err := do(httpClient, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProspect retrieves a single prospect by id.
func GetProspect(ctx context.Context, httpClient HTTPClient, baseURL string, prospectID int) (*types.Prospect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(prospectID, "prospectId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/prospects/%d", baseURL, prospectID)
	req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var p types.Prospect
	if err := do(httpClient, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
