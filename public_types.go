package client

import "github.com/offdeal/bdr-client-go/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Prospect     = types.Prospect
	Deck         = types.Deck
	SlideContent = types.SlideContent
	EmailBatch   = types.EmailBatch
	EmailItem    = types.EmailItem

	// Requests
	CreateProspectRequest = types.CreateProspectRequest
	UpdateDeckRequest     = types.UpdateDeckRequest
	UpdateEmailRequest    = types.UpdateEmailRequest
)

// Errors re-exported in errors.go
