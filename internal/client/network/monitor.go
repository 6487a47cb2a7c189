// Package network отслеживает состояние связи с backend.
package network

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out prober_mock.go . Prober

// Prober проверяет доступность backend
type Prober interface {
	Ping(ctx context.Context) error
}

// Monitor хранит текущее состояние связи и оповещает подписчиков о переходах.
type Monitor struct {
	logger    *slog.Logger
	listeners map[int]func(online bool)
	mu        sync.Mutex
	nextID    int
	online    bool
}

// NewMonitor создает монитор с начальным состоянием online.
func NewMonitor(online bool, logger *slog.Logger) *Monitor {
	return &Monitor{
		online:    online,
		logger:    logger,
		listeners: make(map[int]func(online bool)),
	}
}

// Online возвращает текущее состояние связи
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set устанавливает состояние связи. Подписчики вызываются только при
// изменении состояния, вне блокировки.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	listeners := make([]func(bool), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	m.logger.Info("Connectivity changed", "online", online)

	for _, fn := range listeners {
		fn(online)
	}
}

// Subscribe регистрирует обработчик переходов и возвращает функцию отписки
func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

// Run опрашивает prober с заданным интервалом до отмены ctx.
// Первая проверка выполняется сразу.
func (m *Monitor) Run(ctx context.Context, prober Prober, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		m.probe(ctx, prober, interval)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (m *Monitor) probe(ctx context.Context, prober Prober, timeout time.Duration) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := prober.Ping(probeCtx)
	if ctx.Err() != nil {
		// Остановка не означает потерю связи
		return
	}
	if err != nil {
		m.logger.Debug("Probe failed", "error", err)
	}
	m.Set(err == nil)
}
