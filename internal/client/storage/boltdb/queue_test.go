package boltdb

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

// createTestQueueStorage создает временное хранилище для тестов
func createTestQueueStorage(t *testing.T) (*Storage, string) {
	dbPath := filepath.Join(t.TempDir(), "queue.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store, dbPath
}

// createTestEntry создает тестовую запись очереди
func createTestEntry(label string) *models.QueueEntry {
	return models.NewQueueEntry(&models.MutationRequest{
		Method:  "POST",
		URL:     "/api/tasks/" + label + "/verify",
		Body:    []byte(`{"verified":true}`),
		Headers: map[string]string{"Content-Type": "application/json"},
		Label:   "verify " + label,
	}, time.Date(2026, 7, 14, 10, 0, 0, 123456789, time.UTC))
}

func TestStorage_AddEntry_AssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	var ids []uint64
	for i := 0; i < 5; i++ {
		entry := createTestEntry(fmt.Sprint(i))
		id, err := store.AddEntry(ctx, entry)
		require.NoError(t, err)
		assert.Equal(t, id, entry.ID)
		ids = append(ids, id)
	}

	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1])
	}
}

func TestStorage_AddEntry_InvalidStatus(t *testing.T) {
	store, _ := createTestQueueStorage(t)

	entry := createTestEntry("a")
	entry.Status = "done"

	_, err := store.AddEntry(context.Background(), entry)
	assert.ErrorIs(t, err, storage.ErrInvalidStatus)
	assert.Zero(t, entry.ID)
}

func TestStorage_GetEntry(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	entry := createTestEntry("a")
	id, err := store.AddEntry(ctx, entry)
	require.NoError(t, err)

	got, err := store.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entry.Method, got.Method)
	assert.Equal(t, entry.URL, got.URL)
	assert.Equal(t, entry.Body, got.Body)
	assert.Equal(t, entry.Headers, got.Headers)
	assert.Equal(t, entry.Label, got.Label)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, models.QueueStatusPending, got.Status)

	_, err = store.GetEntry(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestStorage_ListEntries_OrderAndFilter(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	// 300 записей, чтобы ID перешагнули границу байта (256)
	for i := 0; i < 300; i++ {
		_, err := store.AddEntry(ctx, createTestEntry(fmt.Sprint(i)))
		require.NoError(t, err)
	}

	all, err := store.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 300)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	// Помечаем одну запись как failed
	failed := all[10]
	failed.Status = models.QueueStatusFailed
	failed.Retries = 1
	failed.LastError = "boom"
	require.NoError(t, store.UpdateEntry(ctx, failed))

	onlyFailed, err := store.ListEntries(ctx, models.QueueStatusFailed)
	require.NoError(t, err)
	require.Len(t, onlyFailed, 1)
	assert.Equal(t, failed.ID, onlyFailed[0].ID)

	both, err := store.ListEntries(ctx, models.QueueStatusPending, models.QueueStatusFailed)
	require.NoError(t, err)
	assert.Len(t, both, 300)
}

func TestStorage_UpdateEntry(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	entry := createTestEntry("a")
	_, err := store.AddEntry(ctx, entry)
	require.NoError(t, err)

	update := entry.Clone()
	update.Status = models.QueueStatusFailed
	update.Retries = 3
	update.LastError = "server error (500)"
	// Попытка изменить сам запрос должна игнорироваться
	update.URL = "/hijacked"

	require.NoError(t, store.UpdateEntry(ctx, update))

	got, err := store.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QueueStatusFailed, got.Status)
	assert.Equal(t, 3, got.Retries)
	assert.Equal(t, "server error (500)", got.LastError)
	assert.Equal(t, entry.URL, got.URL)

	missing := entry.Clone()
	missing.ID = 12345
	assert.ErrorIs(t, store.UpdateEntry(ctx, missing), storage.ErrEntryNotFound)

	bad := entry.Clone()
	bad.Status = "weird"
	assert.ErrorIs(t, store.UpdateEntry(ctx, bad), storage.ErrInvalidStatus)
}

func TestStorage_DeleteEntry(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	entry := createTestEntry("a")
	_, err := store.AddEntry(ctx, entry)
	require.NoError(t, err)

	require.NoError(t, store.DeleteEntry(ctx, entry.ID))

	_, err = store.GetEntry(ctx, entry.ID)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	assert.ErrorIs(t, store.DeleteEntry(ctx, entry.ID), storage.ErrEntryNotFound)
}

func TestStorage_DeletedIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	first := createTestEntry("a")
	_, err := store.AddEntry(ctx, first)
	require.NoError(t, err)
	require.NoError(t, store.DeleteEntry(ctx, first.ID))

	second := createTestEntry("b")
	_, err = store.AddEntry(ctx, second)
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestStorage_CountByStatus(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	for i := 0; i < 4; i++ {
		entry := createTestEntry(fmt.Sprint(i))
		_, err := store.AddEntry(ctx, entry)
		require.NoError(t, err)
		if i%2 == 0 {
			entry.Status = models.QueueStatusFailed
			require.NoError(t, store.UpdateEntry(ctx, entry))
		}
	}

	pending, err := store.CountByStatus(ctx, models.QueueStatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	failed, err := store.CountByStatus(ctx, models.QueueStatusFailed)
	require.NoError(t, err)
	assert.Equal(t, 2, failed)
}

func TestStorage_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "restart.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	entry := createTestEntry("a")
	_, err = store.AddEntry(ctx, entry)
	require.NoError(t, err)
	entry.Status = models.QueueStatusFailed
	entry.Retries = 2
	entry.LastError = "timeout"
	require.NoError(t, store.UpdateEntry(ctx, entry))
	require.NoError(t, store.Close())

	// Открываем заново, все поля должны сохраниться
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "POST", got.Method)
	assert.Equal(t, entry.URL, got.URL)
	assert.Equal(t, entry.Body, got.Body)
	assert.Equal(t, entry.Headers, got.Headers)
	assert.Equal(t, entry.Label, got.Label)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, models.QueueStatusFailed, got.Status)
	assert.Equal(t, "timeout", got.LastError)
	assert.Equal(t, 2, got.Retries)

	// Следующий ID продолжает последовательность
	next := createTestEntry("b")
	_, err = reopened.AddEntry(ctx, next)
	require.NoError(t, err)
	assert.Greater(t, next.ID, entry.ID)
}

func TestStorage_ConcurrentReadsDuringWrites(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	for i := 0; i < 20; i++ {
		_, err := store.AddEntry(ctx, createTestEntry(fmt.Sprint(i)))
		require.NoError(t, err)
	}

	entries, err := store.ListEntries(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for _, e := range entries {
			e.Status = models.QueueStatusFailed
			e.Retries++
			assert.NoError(t, store.UpdateEntry(ctx, e))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			pending, err := store.CountByStatus(ctx, models.QueueStatusPending)
			assert.NoError(t, err)
			failed, err := store.CountByStatus(ctx, models.QueueStatusFailed)
			assert.NoError(t, err)
			// Каждый подсчёт видит согласованный снимок
			assert.LessOrEqual(t, pending, 20)
			assert.LessOrEqual(t, failed, 20)
		}
	}()

	wg.Wait()

	failed, err := store.CountByStatus(ctx, models.QueueStatusFailed)
	require.NoError(t, err)
	assert.Equal(t, 20, failed)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	store := &Storage{}

	_, err := store.AddEntry(ctx, createTestEntry("a"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.GetEntry(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.ListEntries(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	assert.ErrorIs(t, store.UpdateEntry(ctx, createTestEntry("a")), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.DeleteEntry(ctx, 1), storage.ErrStorageClosed)

	_, err = store.CountByStatus(ctx, models.QueueStatusPending)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_CloseDuringOperations(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestQueueStorage(t)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 4; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 50; j++ {
				_, err := store.AddEntry(ctx, createTestEntry(fmt.Sprintf("%d-%d", i, j)))
				if err != nil {
					// После Close допустима только ошибка закрытого хранилища
					assert.ErrorIs(t, err, storage.ErrStorageClosed)
					return
				}
				_, err = store.ListEntries(ctx)
				if err != nil {
					assert.ErrorIs(t, err, storage.ErrStorageClosed)
					return
				}
			}
		}()
	}

	close(start)
	require.NoError(t, store.Close())
	wg.Wait()

	_, err := store.GetEntry(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.NoError(t, store.Close())
}
