package boltdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/fieldops/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketQueue    = []byte("queue")
	bucketMetadata = []byte("metadata")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	mu sync.RWMutex // Close ждет завершения текущих операций
	db *bbolt.DB
}

var (
	_ storage.QueueStorage    = (*Storage)(nil)
	_ storage.MetadataStorage = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Таймаут нужен, чтобы второй процесс не зависал на file lock навсегда
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketQueue); err != nil {
			return fmt.Errorf("failed to create queue bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketMetadata); err != nil {
			return fmt.Errorf("failed to create metadata bucket: %w", err)
		}

		return nil
	})
}
