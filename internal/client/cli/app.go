package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/iudanet/fieldops/internal/client/api"
	"github.com/iudanet/fieldops/internal/client/iocli"
	"github.com/iudanet/fieldops/internal/client/mutation"
	"github.com/iudanet/fieldops/internal/client/network"
	"github.com/iudanet/fieldops/internal/client/routing"
	"github.com/iudanet/fieldops/internal/client/storage"
	"github.com/iudanet/fieldops/internal/client/storage/boltdb"
	"github.com/iudanet/fieldops/internal/client/storage/sqlite"
	"github.com/iudanet/fieldops/internal/config"
	"github.com/iudanet/fieldops/internal/relay"
)

// initialProbeTimeout сколько ждать backend при старте команды
const initialProbeTimeout = 3 * time.Second

// queueStore хранилище очереди вместе с метаданными
type queueStore interface {
	storage.QueueStorage
	storage.MetadataStorage
	Close() error
}

func openStore(ctx context.Context, cfg *config.Config) (queueStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.StoragePath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if cfg.StorageDriver == config.StorageSQLite {
		s, err := sqlite.New(ctx, cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := boltdb.New(ctx, cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// bootstrap собирает все сервисы клиента по конфигурации.
// Возвращаемая функция освобождает хранилище.
func bootstrap(ctx context.Context, cfg *config.Config, out iocli.IO, logger *slog.Logger, offline bool) (*Cli, func() error, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open queue storage: %w", err)
	}
	logger.Debug("Queue storage opened", "driver", cfg.StorageDriver, "path", cfg.StoragePath)

	client := api.NewClient(cfg.BackendURL, cfg.RequestTimeout)

	var prober network.Prober
	online := false
	if !offline {
		prober = client
		pingCtx, cancel := context.WithTimeout(ctx, initialProbeTimeout)
		online = client.Ping(pingCtx) == nil
		cancel()
	}
	monitor := network.NewMonitor(online, logger)
	logger.Debug("Initial connectivity", "backend", cfg.BackendURL, "online", online)

	engine := mutation.NewEngine(store, client, monitor, logger, mutation.WithMetadata(store))

	lookup := routing.NewLookupQueue(
		&http.Client{Timeout: cfg.LookupTimeout},
		logger,
		routing.WithDelay(cfg.LookupDelay),
		routing.WithCooldown(cfg.LookupCooldown),
	)

	cache, err := routing.NewCache(cfg.CacheCapacity)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	routes := routing.NewService(routing.Config{
		BaseURL:       cfg.RoutingURL,
		Profile:       cfg.RoutingProfile,
		LookupTimeout: cfg.LookupTimeout,
	}, lookup, cache, logger)
	routes.Subscribe(func(ev routing.CacheEvent) {
		logger.Debug("Route cache changed", "key", ev.Key, "event", ev.Type)
	})

	encoder, err := relay.NewEncoder(cfg.RelayOptions(), logger)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	c := New(Deps{
		IO:            out,
		Queue:         engine,
		Routes:        routes,
		Monitor:       monitor,
		Prober:        prober,
		Encoder:       encoder,
		Receiver:      relay.NewReceiver(cfg.ReceiverTTL, logger),
		Logger:        logger,
		ProbeInterval: cfg.ProbeInterval,
	})

	return c, store.Close, nil
}
