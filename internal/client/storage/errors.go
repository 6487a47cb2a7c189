package storage

import "errors"

// Common client storage errors
var (
	// ErrEntryNotFound indicates that queue entry was not found
	ErrEntryNotFound = errors.New("queue entry not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidStatus indicates an unknown queue status value
	ErrInvalidStatus = errors.New("invalid queue status")
)
