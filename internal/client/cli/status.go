package cli

import (
	"context"
	"time"
)

func (c *Cli) runQueueStatus(ctx context.Context) error {
	c.io.Println("=== Queue Status ===")
	c.io.Println()

	if c.monitor.Online() {
		c.io.Success("Backend: online")
	} else {
		c.io.Warning("Backend: offline")
	}

	pending := c.queue.PendingCount(ctx)
	failed := c.queue.FailedCount(ctx)
	c.io.Printf("Pending: %d\n", pending)
	c.io.Printf("Failed:  %d\n", failed)

	last, err := c.queue.LastDrain(ctx)
	switch {
	case err != nil:
		// Не прерываем выполнение, просто сообщаем
		c.io.Printf("Last drain: unknown (%v)\n", err)
	case last.IsZero():
		c.io.Println("Last drain: never")
	default:
		c.io.Printf("Last drain: %s\n", last.Local().Format(time.RFC3339))
	}

	c.io.Println()
	switch {
	case failed > 0:
		c.io.Warning("⚠️  %d mutation(s) need a decision: 'fieldops queue retry <id>' or 'fieldops queue discard <id>'", failed)
	case pending > 0:
		c.io.Println("Run 'fieldops queue drain' to replay pending mutations.")
	default:
		c.io.Success("✓ All mutations delivered")
	}

	return nil
}
