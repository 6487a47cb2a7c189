package routing

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/fieldops/internal/models"
)

// Router resolves a route geometry.
type Router interface {
	Route(ctx context.Context, waypoints []models.Coordinate, style string) (*Route, error)
}

type drawCall struct {
	cancel context.CancelFunc
}

// Drawer applies route results per render target key. A new Draw for a
// key cancels the previous one, and only the latest result is applied.
type Drawer struct {
	router   Router
	logger   *slog.Logger
	inflight map[string]*drawCall
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDrawer creates a drawer over router.
func NewDrawer(router Router, logger *slog.Logger) *Drawer {
	return &Drawer{
		router:   router,
		logger:   logger,
		inflight: make(map[string]*drawCall),
	}
}

// Draw resolves the route in the background and calls apply with the result
// unless a later Draw or Cancel for the same key superseded it.
func (d *Drawer) Draw(ctx context.Context, key string, waypoints []models.Coordinate, style string, apply func(*Route)) {
	ctx, cancel := context.WithCancel(ctx)

	d.mu.Lock()
	if prev, ok := d.inflight[key]; ok {
		prev.cancel()
	}
	call := &drawCall{cancel: cancel}
	d.inflight[key] = call
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()

		route, err := d.router.Route(ctx, waypoints, style)
		if err != nil {
			d.logger.Warn("Route draw failed", "key", key, "error", err)
			d.forget(key, call)
			return
		}

		d.mu.Lock()
		defer d.mu.Unlock()

		if d.inflight[key] != call || ctx.Err() != nil {
			d.logger.Debug("Discarding superseded route", "key", key)
			return
		}
		delete(d.inflight, key)
		apply(route)
	}()
}

// Cancel aborts the pending draw for key, if any.
func (d *Drawer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if call, ok := d.inflight[key]; ok {
		call.cancel()
		delete(d.inflight, key)
	}
}

// Wait blocks until every started draw has finished.
func (d *Drawer) Wait() {
	d.wg.Wait()
}

func (d *Drawer) forget(key string, call *drawCall) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inflight[key] == call {
		delete(d.inflight, key)
	}
}
