package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// bucketsExist проверяет наличие бакетов очереди и метаданных
func bucketsExist(t *testing.T, db *bbolt.DB) {
	t.Helper()

	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketQueue, bucketMetadata} {
			assert.NotNil(t, tx.Bucket(name), "bucket %s", name)
		}
		return nil
	}))
}

func TestNew(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	bucketsExist(t, store.db)
}

func TestNew_MissingDirectory(t *testing.T) {
	// Каталог создает вызывающий код, bbolt его не создает
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "queue.db"))
	assert.ErrorContains(t, err, "failed to open boltdb")
	assert.Nil(t, store)
}

func TestNew_LockedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.db")

	first, err := New(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })

	start := time.Now()
	second, err := New(context.Background(), path)
	assert.Error(t, err)
	assert.Nil(t, second)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestClose_Idempotent(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.NoError(t, store.Close())
}

func TestInitBuckets_ExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.db")

	db, err := bbolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	defer db.Close()

	store := &Storage{db: db}
	require.NoError(t, store.initBuckets())
	// Повторная инициализация не трогает существующие бакеты
	require.NoError(t, store.initBuckets())

	bucketsExist(t, db)
}
