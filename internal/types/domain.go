package types

import (
	"encoding/json"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Prospect is a sales-lead record managed by the remote service.
// Only the id is meaningful to this layer; the remaining fields are
// relayed as the backend represents them.
type Prospect struct {
	ID             int       `json:"id"`
	CompanyName    string    `json:"company_name"`
	ContactName    string    `json:"contact_name,omitempty"`
	Email          string    `json:"email,omitempty"`
	Industry       string    `json:"industry,omitempty"`
	RevenueRange   string    `json:"revenue_range,omitempty"`
	Location       string    `json:"location,omitempty"`
	SaleMotivation string    `json:"sale_motivation,omitempty"`
	Signals        string    `json:"signals,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// Deck is a generated pitch deck for a prospect. Slides stay opaque at
// this boundary; use SlideContents for the canonical shape.
type Deck struct {
	ID         int               `json:"id"`
	ProspectID int               `json:"prospect_id"`
	Title      string            `json:"title"`
	Slides     []json.RawMessage `json:"slides"`
	PDFURL     string            `json:"pdf_url,omitempty"`
}

// SlideContent is the canonical slide shape the backend generates.
type SlideContent struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// SlideContents decodes every slide into the canonical {title, bullets}
// shape. A malformed slide fails the whole call.
func (d *Deck) SlideContents() ([]SlideContent, error) {
	out := make([]SlideContent, 0, len(d.Slides))
	for _, raw := range d.Slides {
		var sc SlideContent
		if err := json.Unmarshal(raw, &sc); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// EmailItem is a single outreach email.
type EmailItem struct {
	ID         int       `json:"id"`
	ProspectID int       `json:"prospect_id,omitempty"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// EmailBatch is the set of generated emails for one prospect.
type EmailBatch struct {
	ProspectID int         `json:"prospect_id"`
	Emails     []EmailItem `json:"emails"`
}
