package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/offdeal/bdr-client-go/internal/types"
)

// GenerateEmails asks the backend to produce the outreach email sequence
// for the prospect.
func GenerateEmails(ctx context.Context, httpClient HTTPClient, baseURL string, prospectID int) (*types.EmailBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(prospectID, "prospectId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/emails/%d/generate", baseURL, prospectID)
	req, err := newJSONRequest(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}
	var b types.EmailBatch
	if err := do(httpClient, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListEmails retrieves the generated emails for a prospect.
func ListEmails(ctx context.Context, httpClient HTTPClient, baseURL string, prospectID int) (*types.EmailBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(prospectID, "prospectId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/emails/%d", baseURL, prospectID)
	req, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var b types.EmailBatch
	if err := do(httpClient, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateEmail patches the subject and/or body of one email item.
func UpdateEmail(ctx context.Context, httpClient HTTPClient, baseURL string, emailID int, reqBody types.UpdateEmailRequest) (*types.EmailItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(emailID, "emailId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/emails/item/%d", baseURL, emailID)
	req, err := newJSONRequest(ctx, http.MethodPatch, url, reqBody)
	if err != nil {
		return nil, err
	}
	var item types.EmailItem
	if err := do(httpClient, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
