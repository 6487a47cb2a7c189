package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/fieldops/internal/client/storage"
)

const keyLastDrainTimestamp = "last_drain_timestamp"

// SaveLastDrainTimestamp saves the unix time of the last successful drain
func (s *Storage) SaveLastDrainTimestamp(ctx context.Context, timestamp int64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO client_metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, keyLastDrainTimestamp, timestamp); err != nil {
		return fmt.Errorf("failed to save last drain timestamp: %w", err)
	}

	return nil
}

// GetLastDrainTimestamp returns 0 if no drain has been recorded yet
func (s *Storage) GetLastDrainTimestamp(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM client_metadata WHERE key = ?`, keyLastDrainTimestamp,
	).Scan(&timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get last drain timestamp: %w", err)
	}

	return timestamp, nil
}
