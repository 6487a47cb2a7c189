// Package routing fetches road geometry from an OSRM-compatible service
// through a throttled queue and a bounded cache.
package routing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/fieldops/internal/models"
	"github.com/iudanet/fieldops/internal/validation"
)

const (
	// DefaultProfile профиль OSRM по умолчанию
	DefaultProfile = "driving"
	// DefaultLookupTimeout максимальное ожидание маршрута до перехода на прямую линию
	DefaultLookupTimeout = 15 * time.Second
)

// Lookuper performs a throttled GET lookup.
type Lookuper interface {
	Do(ctx context.Context, url string) ([]byte, error)
}

// Route is a renderable route geometry.
type Route struct {
	Geometry models.Geometry
	Fallback bool // прямая линия между точками: сервис недоступен или запрос прерван
	Cached   bool
}

// CacheEventType identifies a cache notification.
type CacheEventType int

const (
	// CacheStored маршрут добавлен в кэш
	CacheStored CacheEventType = iota + 1
	// CacheEvicted маршрут вытеснен из кэша
	CacheEvicted
)

// CacheEvent сообщает об изменении кэша маршрутов
type CacheEvent struct {
	Key  string
	Type CacheEventType
}

// Config настройки сервиса маршрутов
type Config struct {
	BaseURL       string
	Profile       string
	LookupTimeout time.Duration
}

// Service resolves routes. A cache hit never touches the queue, and a
// failed or aborted lookup yields a straight-line fallback.
type Service struct {
	lookup    Lookuper
	cache     *Cache
	logger    *slog.Logger
	listeners map[int]func(CacheEvent)
	cfg       Config
	mu        sync.Mutex
	nextSub   int
}

// NewService creates a route service.
func NewService(cfg Config, lookup Lookuper, cache *Cache, logger *slog.Logger) *Service {
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = DefaultLookupTimeout
	}

	return &Service{
		cfg:       cfg,
		lookup:    lookup,
		cache:     cache,
		logger:    logger,
		listeners: make(map[int]func(CacheEvent)),
	}
}

// Route returns the road geometry through waypoints for the given style.
// Only invalid waypoints produce an error.
func (s *Service) Route(ctx context.Context, waypoints []models.Coordinate, style string) (*Route, error) {
	if err := validation.ValidateWaypoints(waypoints); err != nil {
		return nil, fmt.Errorf("invalid waypoints: %w", err)
	}

	key := CacheKey(waypoints, style)
	if geometry, ok := s.cache.Get(key); ok {
		s.logger.Debug("Route served from cache", "key", key)
		return &Route{Geometry: geometry, Cached: true}, nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.LookupTimeout)
	defer cancel()

	url := routeURL(s.cfg.BaseURL, s.cfg.Profile, waypoints)
	body, err := s.lookup.Do(lookupCtx, url)
	if err != nil {
		s.logger.Warn("Route lookup failed, using straight line", "url", url, "error", err)
		return fallbackRoute(waypoints), nil
	}

	geometry, err := parseRoute(body)
	if err != nil {
		s.logger.Warn("Unusable route response, using straight line", "url", url, "error", err)
		return fallbackRoute(waypoints), nil
	}

	if stored, evicted := s.cache.Add(key, geometry); stored {
		for _, k := range evicted {
			s.emit(CacheEvent{Type: CacheEvicted, Key: k})
		}
		s.emit(CacheEvent{Type: CacheStored, Key: key})
	}

	return &Route{Geometry: geometry}, nil
}

// Subscribe registers fn for cache events and returns an unsubscribe func.
func (s *Service) Subscribe(fn func(CacheEvent)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Service) emit(ev CacheEvent) {
	s.mu.Lock()
	listeners := make([]func(CacheEvent), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

// fallbackRoute соединяет точки прямыми отрезками
func fallbackRoute(waypoints []models.Coordinate) *Route {
	return &Route{
		Geometry: models.Geometry(waypoints).Clone(),
		Fallback: true,
	}
}
