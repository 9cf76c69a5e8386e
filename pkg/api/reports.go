package api

import (
	"encoding/json"
	"time"
)

// Report represents a field report on the wire.
type Report struct {
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	ID         string          `json:"id"`
	TemplateID string          `json:"template_id"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	Fields     json.RawMessage `json:"fields"`
}

// SaveReportRequest is the payload for PUT /api/v1/reports/{id}.
// Fields holds the full form content; partial updates are not supported,
// the latest client state always wins.
type SaveReportRequest struct {
	Title  string          `json:"title"`
	Status string          `json:"status,omitempty"`
	Fields json.RawMessage `json:"fields"`
}

// SaveReportResponse acknowledges a save with the server-side timestamp.
type SaveReportResponse struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
}

// ListReportsResponse is the payload of GET /api/v1/reports.
type ListReportsResponse struct {
	Reports []Report `json:"reports"`
	Total   int      `json:"total"`
}
