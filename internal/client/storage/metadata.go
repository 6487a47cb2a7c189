package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastDrainTimestamp saves the unix time of the last drain that synced at least one entry
	SaveLastDrainTimestamp(ctx context.Context, timestamp int64) error

	// GetLastDrainTimestamp retrieves the timestamp of the last successful drain
	// Returns 0 if no drain has been performed yet
	GetLastDrainTimestamp(ctx context.Context) (int64, error)
}
