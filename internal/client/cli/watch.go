package cli

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/fieldops/internal/client/mutation"
)

// runWatch следит за связью и воспроизводит очередь при каждом переходе в online
// до отмены ctx.
func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("=== Watching backend connectivity ===")
	c.io.Printf("Pending: %d, failed: %d\n", c.queue.PendingCount(ctx), c.queue.FailedCount(ctx))
	c.io.Println("Press Ctrl+C to stop.")
	c.io.Println()

	unsubscribeNet := c.monitor.Subscribe(func(online bool) {
		if online {
			c.io.Success("● Backend online")
		} else {
			c.io.Warning("○ Backend offline, new mutations will be queued")
		}
	})
	defer unsubscribeNet()

	unsubscribeQueue := c.queue.Subscribe(c.printEvent)
	defer unsubscribeQueue()

	g, gctx := errgroup.WithContext(ctx)

	// Без prober (--offline) состояние не меняется
	if c.prober != nil {
		g.Go(func() error {
			return c.monitor.Run(gctx, c.prober, c.probeInterval)
		})
	}
	g.Go(func() error {
		return c.queue.Run(gctx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.io.Println()
		c.io.Println("Stopped.")
		return nil
	}
	return err
}

func (c *Cli) printEvent(ev mutation.Event) {
	switch ev.Type {
	case mutation.EventEnqueued:
		c.io.Printf("+ queued entry %d\n", ev.EntryID)
	case mutation.EventSynced:
		c.io.Success("✓ entry %d delivered", ev.EntryID)
	case mutation.EventReplayFailed:
		c.io.Error("✗ entry %d failed: %v", ev.EntryID, ev.Err)
	case mutation.EventDiscarded:
		c.io.Warning("- entry %d discarded", ev.EntryID)
	case mutation.EventDrained:
		if ev.Synced > 0 || ev.Failed > 0 {
			c.io.Printf("Drain finished: %d synced, %d failed\n", ev.Synced, ev.Failed)
		}
	}
}
