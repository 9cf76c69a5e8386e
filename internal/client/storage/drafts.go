package storage

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate moq -out drafts_mock.go . DraftStorage

// DraftStorage defines the durable local persistence surface for crash
// recovery drafts. Implementations must survive process restarts; a
// cleared database loses drafts, which is accepted.
type DraftStorage interface {
	// SaveDraft stores or overwrites the draft record under record.Key
	SaveDraft(ctx context.Context, record *DraftRecord) error

	// GetDraft retrieves the draft record stored under key
	// Returns ErrDraftNotFound if no draft exists
	GetDraft(ctx context.Context, key string) (*DraftRecord, error)

	// DeleteDraft removes the draft record stored under key
	// Returns ErrDraftNotFound if no draft exists
	DeleteDraft(ctx context.Context, key string) error
}

// DraftRecord is a locally persisted snapshot of in-progress edits.
// Payload is opaque to the storage layer; ownership is exclusive to the
// editing session identified by Key.
type DraftRecord struct {
	WrittenAt time.Time       `json:"written_at"`
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
}
