// GORM model + simple DTOs used in handlers.

package models

import "time"

// Participant is one eligible name in the database-backed roster.
// Name is stored as imported; normalization happens when the roster is built.
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:180;not null;index" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CertificateRequest is the payload of POST /certificates.
// Name is kept raw (no binding rules) so an empty submission reaches the
// service and gets the "name not found" notice instead of a 400 bind error.
type CertificateRequest struct {
	Name  string `json:"name"`
	Event string `json:"event"`
}

// Notice is a modal dialog shown by the page: fixed icon, title, body and a
// single acknowledgement button.
type Notice struct {
	Icon              string `json:"icon"`  // success|error|warning
	Title             string `json:"title"`
	Text              string `json:"text"`
	ConfirmButtonText string `json:"confirm_button_text"`
}

// CertificateResponse is returned on a successful submission.
type CertificateResponse struct {
	Notice      *Notice `json:"notice,omitempty"` // only set for the extended variant
	FileName    string  `json:"file_name"`
	DownloadURL string  `json:"download_url"`
}

// ErrorResponse carries the notice for a rejected submission.
type ErrorResponse struct {
	Error  string `json:"error"`
	Notice Notice `json:"notice"`
}

// EventsResponse lists selectable events for the dropdown.
type EventsResponse struct {
	Events       []string `json:"events"`
	RequireEvent bool     `json:"require_event"`
}

// Health is the body of GET /healthz.
type Health struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	RosterSize   int    `json:"roster_size"`
	RosterLoaded bool   `json:"roster_loaded"`
}
