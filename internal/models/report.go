package models

import (
	"encoding/json"
	"time"
)

// Report статусы отчёта на клиенте.
const (
	ReportStatusDraft     = "draft"
	ReportStatusSubmitted = "submitted"
)

// Report represents a field report being filled in by a technician.
// Fields is the raw form content; the client treats it as opaque JSON
// and never interprets individual field values.
type Report struct {
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	ID         string          `json:"id"`         // ID уникальный идентификатор отчёта (UUID)
	TemplateID string          `json:"template_id"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	Fields     json.RawMessage `json:"fields"`
}

// SetField updates a single form field in place. The Fields blob is
// decoded, mutated and re-encoded; a nil or empty blob starts from an
// empty object.
func (r *Report) SetField(name string, value any) error {
	fields := map[string]any{}
	if len(r.Fields) > 0 {
		if err := json.Unmarshal(r.Fields, &fields); err != nil {
			return err
		}
	}
	fields[name] = value

	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	r.Fields = data
	return nil
}

// FieldNames returns the names of all filled form fields, for display.
func (r *Report) FieldNames() ([]string, error) {
	if len(r.Fields) == 0 {
		return nil, nil
	}
	fields := map[string]any{}
	if err := json.Unmarshal(r.Fields, &fields); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names, nil
}
