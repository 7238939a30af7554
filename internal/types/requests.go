package types

import "encoding/json"

// ------------------------------
// Request Types
// ------------------------------

// CreateProspectRequest holds the fields accepted when registering a new
// prospect. CompanyName is the only required field; the backend treats
// everything else as optional metadata.
type CreateProspectRequest struct {
	CompanyName    string `json:"company_name"`
	ContactName    string `json:"contact_name,omitempty"`
	Email          string `json:"email,omitempty"`
	Industry       string `json:"industry,omitempty"`
	RevenueRange   string `json:"revenue_range,omitempty"`
	Location       string `json:"location,omitempty"`
	SaleMotivation string `json:"sale_motivation,omitempty"`
	Signals        string `json:"signals,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// UpdateDeckRequest replaces a deck's slides and, optionally, its title.
// Slides is always serialized, even when empty; a nil slice encodes as [].
type UpdateDeckRequest struct {
	Title  *string           `json:"title,omitempty"`
	Slides []json.RawMessage `json:"slides"`
}

// UpdateEmailRequest patches the subject and/or body of one email.
// Nil pointers are omitted so the backend leaves those fields untouched.
type UpdateEmailRequest struct {
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}
