package storage

import (
	"context"

	"github.com/iudanet/fieldops/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines interface for the persistent mutation queue.
// Implementations must make every single-entry write atomic so that
// concurrent List/Count calls never observe a half-updated entry.
type QueueStorage interface {
	// AddEntry persists a new entry, assigns the next monotonic ID
	// and returns it. The entry's ID field is updated in place.
	AddEntry(ctx context.Context, entry *models.QueueEntry) (uint64, error)

	// GetEntry retrieves an entry by ID
	// Returns ErrEntryNotFound if entry doesn't exist
	GetEntry(ctx context.Context, id uint64) (*models.QueueEntry, error)

	// ListEntries returns entries ordered by ID ascending.
	// With no statuses given all entries are returned.
	ListEntries(ctx context.Context, statuses ...models.QueueStatus) ([]*models.QueueEntry, error)

	// UpdateEntry overwrites status, retries and last error of an existing entry
	// Returns ErrEntryNotFound if entry doesn't exist
	UpdateEntry(ctx context.Context, entry *models.QueueEntry) error

	// DeleteEntry removes an entry permanently
	// Returns ErrEntryNotFound if entry doesn't exist
	DeleteEntry(ctx context.Context, id uint64) error

	// CountByStatus returns the number of entries with the given status
	CountByStatus(ctx context.Context, status models.QueueStatus) (int, error)
}
