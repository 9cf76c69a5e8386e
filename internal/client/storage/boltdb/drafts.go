package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/alecont1/relatorios-sub001/internal/client/storage"
)

// Compile-time check that Storage implements DraftStorage
var _ storage.DraftStorage = (*Storage)(nil)

// SaveDraft stores or overwrites the draft record under record.Key
func (s *Storage) SaveDraft(ctx context.Context, record *storage.DraftRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal draft record: %w", err)
		}

		if err := bucket.Put([]byte(record.Key), data); err != nil {
			return fmt.Errorf("failed to save draft record: %w", err)
		}

		return nil
	})
}

// GetDraft retrieves the draft record stored under key
func (s *Storage) GetDraft(ctx context.Context, key string) (*storage.DraftRecord, error) {
	var record *storage.DraftRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrDraftNotFound
		}

		record = &storage.DraftRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal draft record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteDraft removes the draft record stored under key
func (s *Storage) DeleteDraft(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get([]byte(key)) == nil {
			return storage.ErrDraftNotFound
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete draft record: %w", err)
		}

		return nil
	})
}
