package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/fieldops/internal/client/storage"
	"github.com/iudanet/fieldops/internal/models"
)

const selectColumns = `
	SELECT id, method, url, body, headers, label,
	       created_at, status, last_error, retries
	FROM mutation_queue
`

// AddEntry inserts a new queue entry; AUTOINCREMENT guarantees ids are never reused
func (s *Storage) AddEntry(ctx context.Context, entry *models.QueueEntry) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	if !entry.Status.Valid() {
		return 0, fmt.Errorf("%w: %q", storage.ErrInvalidStatus, entry.Status)
	}

	headers, err := marshalHeaders(entry.Headers)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO mutation_queue (
			method, url, body, headers, label,
			created_at, status, last_error, retries
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		entry.Method,
		entry.URL,
		entry.Body,
		headers,
		entry.Label,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(entry.Status),
		entry.LastError,
		entry.Retries,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}

	entry.ID = uint64(id)
	return entry.ID, nil
}

// GetEntry retrieves a single entry by ID
func (s *Storage) GetEntry(ctx context.Context, id uint64) (*models.QueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// ListEntries returns entries ordered by ID, optionally filtered by status
func (s *Storage) ListEntries(ctx context.Context, statuses ...models.QueueStatus) (entries []*models.QueueEntry, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := selectColumns
	args := make([]any, 0, len(statuses))

	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, st := range statuses {
			placeholders[i] = "?"
			args = append(args, string(st))
		}
		query += ` WHERE status IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
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

	query := `
		UPDATE mutation_queue
		SET status = ?, retries = ?, last_error = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		string(entry.Status),
		entry.Retries,
		entry.LastError,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	return requireAffected(res)
}

// DeleteEntry removes an entry from the queue
func (s *Storage) DeleteEntry(ctx context.Context, id uint64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM mutation_queue WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return requireAffected(res)
}

// CountByStatus returns the number of entries with the given status
func (s *Storage) CountByStatus(ctx context.Context, status models.QueueStatus) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM mutation_queue WHERE status = ?`, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}

	return count, nil
}

// rowScanner объединяет *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.QueueEntry, error) {
	var (
		entry     models.QueueEntry
		headers   string
		createdAt string
		status    string
	)

	err := row.Scan(
		&entry.ID,
		&entry.Method,
		&entry.URL,
		&entry.Body,
		&headers,
		&entry.Label,
		&createdAt,
		&status,
		&entry.LastError,
		&entry.Retries,
	)
	if err != nil {
		return nil, err
	}

	entry.Status = models.QueueStatus(status)

	entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}

	if headers != "" {
		if err := json.Unmarshal([]byte(headers), &entry.Headers); err != nil {
			return nil, fmt.Errorf("invalid headers: %w", err)
		}
	}

	if len(entry.Body) == 0 {
		entry.Body = nil
	}

	return &entry, nil
}

func marshalHeaders(headers map[string]string) (string, error) {
	if len(headers) == 0 {
		return "{}", nil
	}

	data, err := json.Marshal(headers)
	if err != nil {
		return "", fmt.Errorf("failed to marshal headers: %w", err)
	}

	return string(data), nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrEntryNotFound
	}
	return nil
}
