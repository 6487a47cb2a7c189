package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fieldops/internal/client/storage"
	"github.com/iudanet/fieldops/internal/models"
)

// idKey кодирует ID в big-endian, чтобы курсор bbolt обходил записи по возрастанию ID
func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// AddEntry stores a new queue entry under the next bucket sequence
func (s *Storage) AddEntry(ctx context.Context, entry *models.QueueEntry) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	if !entry.Status.Valid() {
		return 0, fmt.Errorf("%w: %q", storage.ErrInvalidStatus, entry.Status)
	}

	var id uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate id: %w", err)
		}

		record := entry.Clone()
		record.ID = seq

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal queue entry: %w", err)
		}

		if err := bucket.Put(idKey(seq), data); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		id = seq
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("transaction failed: %w", err)
	}

	// ID выставляем только после успешного commit
	entry.ID = id

	return id, nil
}

// GetEntry retrieves a queue entry by ID
func (s *Storage) GetEntry(ctx context.Context, id uint64) (*models.QueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entry *models.QueueEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrEntryNotFound
		}

		data := bucket.Get(idKey(id))
		if data == nil {
			return storage.ErrEntryNotFound
		}

		entry = &models.QueueEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListEntries returns entries ordered by ID, optionally filtered by status
func (s *Storage) ListEntries(ctx context.Context, statuses ...models.QueueStatus) ([]*models.QueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []*models.QueueEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		// ForEach обходит ключи в порядке байтов, а big-endian ключи дают порядок ID
		return bucket.ForEach(func(k, v []byte) error {
			var entry models.QueueEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal entry: %w", err)
			}

			if len(statuses) > 0 && !slices.Contains(statuses, entry.Status) {
				return nil
			}

			entries = append(entries, &entry)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}

// UpdateEntry overwrites replay state (status, retries, last error) of an entry
func (s *Storage) UpdateEntry(ctx context.Context, entry *models.QueueEntry) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if !entry.Status.Valid() {
		return fmt.Errorf("%w: %q", storage.ErrInvalidStatus, entry.Status)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrEntryNotFound
		}

		data := bucket.Get(idKey(entry.ID))
		if data == nil {
			return storage.ErrEntryNotFound
		}

		var existing models.QueueEntry
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("failed to unmarshal entry: %w", err)
		}

		// Сам запрос неизменяем, обновляется только состояние воспроизведения
		existing.Status = entry.Status
		existing.Retries = entry.Retries
		existing.LastError = entry.LastError

		updated, err := json.Marshal(&existing)
		if err != nil {
			return fmt.Errorf("failed to marshal updated entry: %w", err)
		}

		if err := bucket.Put(idKey(entry.ID), updated); err != nil {
			return fmt.Errorf("failed to save updated entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("update transaction failed: %w", err)
	}

	return nil
}

// DeleteEntry removes an entry from the queue
func (s *Storage) DeleteEntry(ctx context.Context, id uint64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrEntryNotFound
		}

		if bucket.Get(idKey(id)) == nil {
			return storage.ErrEntryNotFound
		}

		return bucket.Delete(idKey(id))
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// CountByStatus returns the number of entries with the given status
func (s *Storage) CountByStatus(ctx context.Context, status models.QueueStatus) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			// Достаточно прочитать только поле status
			var head struct {
				Status models.QueueStatus `json:"status"`
			}
			if err := json.Unmarshal(v, &head); err != nil {
				return fmt.Errorf("failed to unmarshal entry: %w", err)
			}
			if head.Status == status {
				count++
			}
			return nil
		})
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}

	return count, nil
}
