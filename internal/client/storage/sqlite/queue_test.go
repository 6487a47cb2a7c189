package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldops/internal/client/storage"
	"github.com/iudanet/fieldops/internal/models"
)

func setupTestStorage(t *testing.T) *Storage {
	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func createTestEntry(label string) *models.QueueEntry {
	return models.NewQueueEntry(&models.MutationRequest{
		Method:  "PATCH",
		URL:     "/api/needs/" + label,
		Body:    []byte(`{"status":"fulfilled"}`),
		Headers: map[string]string{"Content-Type": "application/json", "Idempotency-Key": "k-" + label},
		Label:   "fulfil need " + label,
	}, time.Date(2026, 7, 14, 10, 0, 0, 5, time.UTC))
}

func TestStorage_Migrations(t *testing.T) {
	s := setupTestStorage(t)

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='mutation_queue'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "mutation_queue", name)
}

func TestStorage_AddAndGetEntry(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	entry := createTestEntry("1")
	id, err := s.AddEntry(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, id, entry.ID)

	got, err := s.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entry.Method, got.Method)
	assert.Equal(t, entry.URL, got.URL)
	assert.Equal(t, entry.Body, got.Body)
	assert.Equal(t, entry.Headers, got.Headers)
	assert.Equal(t, entry.Label, got.Label)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, models.QueueStatusPending, got.Status)
	assert.Equal(t, 0, got.Retries)

	_, err = s.GetEntry(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestStorage_AddEntry_NoBodyNoHeaders(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	entry := models.NewQueueEntry(&models.MutationRequest{Method: "DELETE", URL: "/api/needs/7"}, time.Now())
	_, err := s.AddEntry(ctx, entry)
	require.NoError(t, err)

	got, err := s.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Body)
	assert.Empty(t, got.Headers)
}

func TestStorage_ListEntries(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	for i := 0; i < 5; i++ {
		_, err := s.AddEntry(ctx, createTestEntry(fmt.Sprint(i)))
		require.NoError(t, err)
	}

	all, err := s.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	all[1].Status = models.QueueStatusFailed
	all[1].Retries = 1
	all[1].LastError = "server error (503)"
	require.NoError(t, s.UpdateEntry(ctx, all[1]))

	failed, err := s.ListEntries(ctx, models.QueueStatusFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, all[1].ID, failed[0].ID)
	assert.Equal(t, "server error (503)", failed[0].LastError)

	pending, err := s.ListEntries(ctx, models.QueueStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 4)
}

func TestStorage_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	entry := createTestEntry("1")
	_, err := s.AddEntry(ctx, entry)
	require.NoError(t, err)

	entry.Status = models.QueueStatusFailed
	entry.Retries = 2
	require.NoError(t, s.UpdateEntry(ctx, entry))

	count, err := s.CountByStatus(ctx, models.QueueStatusFailed)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.DeleteEntry(ctx, entry.ID))
	assert.ErrorIs(t, s.DeleteEntry(ctx, entry.ID), storage.ErrEntryNotFound)
	assert.ErrorIs(t, s.UpdateEntry(ctx, entry), storage.ErrEntryNotFound)

	bad := entry.Clone()
	bad.Status = "archived"
	assert.ErrorIs(t, s.UpdateEntry(ctx, bad), storage.ErrInvalidStatus)
}

func TestStorage_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first := createTestEntry("1")
	_, err := s.AddEntry(ctx, first)
	require.NoError(t, err)
	require.NoError(t, s.DeleteEntry(ctx, first.ID))

	second := createTestEntry("2")
	_, err = s.AddEntry(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestStorage_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "queue.sqlite")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	entry := createTestEntry("1")
	_, err = s.AddEntry(ctx, entry)
	require.NoError(t, err)
	require.NoError(t, s.SaveLastDrainTimestamp(ctx, 1784000000))
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, entry.Headers, entries[0].Headers)

	ts, err := reopened.GetLastDrainTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1784000000), ts)
}

func TestStorage_LastDrainTimestamp(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	ts, err := s.GetLastDrainTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)

	require.NoError(t, s.SaveLastDrainTimestamp(ctx, 100))
	require.NoError(t, s.SaveLastDrainTimestamp(ctx, 200))

	ts, err = s.GetLastDrainTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(200), ts)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	s := &Storage{}

	_, err := s.AddEntry(ctx, createTestEntry("1"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = s.ListEntries(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = s.CountByStatus(ctx, models.QueueStatusPending)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.NoError(t, s.Close())
}

func TestStorage_CloseDuringOperations(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 4; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 20; j++ {
				if _, err := s.AddEntry(ctx, createTestEntry(fmt.Sprintf("%d-%d", i, j))); err != nil {
					assert.ErrorIs(t, err, storage.ErrStorageClosed)
					return
				}
				if _, err := s.CountByStatus(ctx, models.QueueStatusPending); err != nil {
					assert.ErrorIs(t, err, storage.ErrStorageClosed)
					return
				}
			}
		}()
	}

	close(start)
	require.NoError(t, s.Close())
	wg.Wait()

	assert.Nil(t, s.DB())
	_, err = s.ListEntries(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
