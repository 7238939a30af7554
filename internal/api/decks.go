package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/offdeal/bdr-client-go/internal/types"
)

// GenerateDeck asks the backend to produce a personalized pitch deck for
// the prospect. Generation happens remotely; this call just waits for it.
func GenerateDeck(ctx context.Context, httpClient HTTPClient, baseURL string, prospectID int) (*types.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(prospectID, "prospectId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/decks/%d/generate", baseURL, prospectID)
	req, err := newJSONRequest(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}
	var d types.Deck
	if err := do(httpClient, req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// RenderDeck renders the deck's slides to a PDF and returns the deck with
// its pdf_url populated.
func RenderDeck(ctx context.Context, httpClient HTTPClient, baseURL string, deckID int) (*types.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(deckID, "deckId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/decks/%d/render", baseURL, deckID)
	req, err := newJSONRequest(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}
	var d types.Deck
	if err := do(httpClient, req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDeck replaces the deck's slides and, optionally, its title.
// The slides field is always sent; a nil slice goes out as [] so the
// backend can distinguish "clear the deck" from a malformed payload.
func UpdateDeck(ctx context.Context, httpClient HTTPClient, baseURL string, deckID int, reqBody types.UpdateDeckRequest) (*types.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(deckID, "deckId"); err != nil {
		return nil, err
	}
	if reqBody.Slides == nil {
		reqBody.Slides = []json.RawMessage{}
	}
	url := fmt.Sprintf("%s/decks/%d", baseURL, deckID)
	req, err := newJSONRequest(ctx, http.MethodPatch, url, reqBody)
	if err != nil {
		return nil, err
	}
	var d types.Deck
	if err := do(httpClient, req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
