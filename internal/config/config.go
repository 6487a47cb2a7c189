// Package config загружает настройки клиента из .env и переменных окружения FIELDOPS_*.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iudanet/fieldops/internal/relay"
)

const (
	envPrefix = "FIELDOPS"

	// StorageBolt драйвер очереди на bbolt
	StorageBolt = "bolt"
	// StorageSQLite драйвер очереди на sqlite
	StorageSQLite = "sqlite"

	defaultDataDir = ".fieldops"
)

// Config holds all client settings.
type Config struct {
	BackendURL     string
	StorageDriver  string
	StoragePath    string
	RoutingURL     string
	RoutingProfile string
	LogLevel       string
	LogFile        string
	RequestTimeout time.Duration
	ProbeInterval  time.Duration
	LookupDelay    time.Duration
	LookupCooldown time.Duration
	LookupTimeout  time.Duration
	ReceiverTTL    time.Duration
	CacheCapacity  int
	SingleChunk    int
	ChunkSize      int
	ImageMaxDim    int
	ImageQuality   int
}

// Load читает .env (если есть) и переменные окружения с префиксом FIELDOPS_.
// envFile может быть пустым.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		BackendURL:     strings.TrimRight(v.GetString("backend_url"), "/"),
		StorageDriver:  strings.ToLower(v.GetString("storage_driver")),
		StoragePath:    v.GetString("storage_path"),
		RoutingURL:     strings.TrimRight(v.GetString("routing_url"), "/"),
		RoutingProfile: v.GetString("routing_profile"),
		LogLevel:       strings.ToLower(v.GetString("log_level")),
		LogFile:        v.GetString("log_file"),
		RequestTimeout: v.GetDuration("request_timeout"),
		ProbeInterval:  v.GetDuration("probe_interval"),
		LookupDelay:    v.GetDuration("lookup_delay"),
		LookupCooldown: v.GetDuration("lookup_cooldown"),
		LookupTimeout:  v.GetDuration("lookup_timeout"),
		ReceiverTTL:    v.GetDuration("relay_receiver_ttl"),
		CacheCapacity:  v.GetInt("route_cache_capacity"),
		SingleChunk:    v.GetInt("relay_single_chunk_capacity"),
		ChunkSize:      v.GetInt("relay_chunk_size"),
		ImageMaxDim:    v.GetInt("relay_image_max_dimension"),
		ImageQuality:   v.GetInt("relay_image_quality"),
	}

	if cfg.StoragePath == "" {
		cfg.StoragePath = DefaultStoragePath(cfg.StorageDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend_url", "http://localhost:8080")
	v.SetDefault("storage_driver", StorageBolt)
	v.SetDefault("routing_url", "https://router.project-osrm.org")
	v.SetDefault("routing_profile", "driving")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("probe_interval", 10*time.Second)
	v.SetDefault("lookup_delay", 1100*time.Millisecond)
	v.SetDefault("lookup_cooldown", 5*time.Second)
	v.SetDefault("lookup_timeout", 15*time.Second)
	v.SetDefault("relay_receiver_ttl", 10*time.Minute)
	v.SetDefault("route_cache_capacity", 100)
	v.SetDefault("relay_single_chunk_capacity", relay.DefaultSingleChunkCapacity)
	v.SetDefault("relay_chunk_size", relay.DefaultChunkSize)
	v.SetDefault("relay_image_max_dimension", relay.DefaultImageMaxDimension)
	v.SetDefault("relay_image_quality", relay.DefaultImageQuality)
}

// DefaultStoragePath возвращает путь к очереди в домашней директории пользователя
func DefaultStoragePath(driver string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	name := "queue.db"
	if driver == StorageSQLite {
		name = "queue.sqlite"
	}

	return filepath.Join(homeDir, defaultDataDir, name)
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if err := validateBaseURL("backend url", c.BackendURL); err != nil {
		return err
	}
	if err := validateBaseURL("routing url", c.RoutingURL); err != nil {
		return err
	}

	if c.StorageDriver != StorageBolt && c.StorageDriver != StorageSQLite {
		return fmt.Errorf("unknown storage driver %q (use %s or %s)", c.StorageDriver, StorageBolt, StorageSQLite)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	for name, d := range map[string]time.Duration{
		"request timeout":    c.RequestTimeout,
		"probe interval":     c.ProbeInterval,
		"lookup timeout":     c.LookupTimeout,
		"relay receiver ttl": c.ReceiverTTL,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if c.LookupDelay < 0 || c.LookupCooldown < 0 {
		return fmt.Errorf("lookup delay and cooldown must not be negative")
	}

	if c.CacheCapacity <= 0 {
		return fmt.Errorf("route cache capacity must be positive")
	}

	if err := c.RelayOptions().Validate(); err != nil {
		return fmt.Errorf("invalid relay settings: %w", err)
	}

	return nil
}

// RelayOptions returns the relay encoder settings.
func (c *Config) RelayOptions() relay.Options {
	return relay.Options{
		SingleChunkCapacity: c.SingleChunk,
		ChunkSize:           c.ChunkSize,
		ImageMaxDimension:   c.ImageMaxDim,
		ImageQuality:        c.ImageQuality,
	}
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}
