package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fieldops/internal/client/storage"
)

const (
	keyLastDrainTimestamp = "last_drain_timestamp"
)

// SaveLastDrainTimestamp saves the unix time of the last successful drain
func (s *Storage) SaveLastDrainTimestamp(ctx context.Context, timestamp int64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		if err := bucket.Put([]byte(keyLastDrainTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last drain timestamp: %w", err)
		}

		return nil
	})
}

// GetLastDrainTimestamp retrieves the timestamp of the last successful drain
// Returns 0 if no drain has been performed yet
func (s *Storage) GetLastDrainTimestamp(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(keyLastDrainTimestamp))
		if timestampBytes == nil {
			// Drain ещё не выполнялся
			return nil
		}

		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last drain timestamp: %w", err)
	}

	return timestamp, nil
}
