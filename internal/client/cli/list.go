package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/fieldops/internal/models"
)

func (c *Cli) runQueueList(ctx context.Context) error {
	c.io.Println("=== Queued Mutations ===")
	c.io.Println()

	entries, err := c.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queue: %w", err)
	}

	if len(entries) == 0 {
		c.io.Println("Queue is empty.")
		return nil
	}

	c.io.Printf("Found %d entr%s:\n", len(entries), plural(len(entries), "y", "ies"))
	c.io.Println()

	for _, e := range entries {
		c.io.Printf("%d. %s\n", e.ID, e.Label)
		c.io.Printf("   Request: %s %s\n", e.Method, e.URL)
		c.io.Printf("   Queued:  %s\n", e.CreatedAt.Local().Format(time.RFC3339))
		if e.Status == models.QueueStatusFailed {
			c.io.Printf("   Status:  failed after %d attempt%s\n", e.Retries, plural(e.Retries, "", "s"))
			c.io.Printf("   Error:   %s\n", e.LastError)
		} else {
			c.io.Printf("   Status:  %s\n", e.Status)
		}
		c.io.Println()
	}

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
