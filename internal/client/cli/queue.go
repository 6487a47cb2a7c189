package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/fieldops/internal/client/mutation"
	"github.com/iudanet/fieldops/internal/models"
)

// addOptions параметры команды queue add
type addOptions struct {
	Method    string
	URL       string
	Label     string
	Body      string
	BodyFile  string
	Headers   []string // "Name: value"
	QueueOnly bool
}

func (o addOptions) request() (*models.MutationRequest, error) {
	req := &models.MutationRequest{
		Method:  strings.ToUpper(o.Method),
		URL:     o.URL,
		Label:   o.Label,
		Headers: make(map[string]string, len(o.Headers)),
	}

	if req.Label == "" {
		req.Label = req.Method + " " + req.URL
	}

	switch {
	case o.Body != "" && o.BodyFile != "":
		return nil, fmt.Errorf("use either --body or --body-file, not both")
	case o.BodyFile != "":
		data, err := os.ReadFile(o.BodyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		req.Body = data
	case o.Body != "":
		req.Body = []byte(o.Body)
	}

	for _, h := range o.Headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Name: value'", h)
		}
		req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return req, nil
}

func (c *Cli) runQueueAdd(ctx context.Context, opts addOptions) error {
	req, err := opts.request()
	if err != nil {
		return err
	}

	if opts.QueueOnly {
		id, err := c.queue.Enqueue(ctx, req)
		if err != nil {
			return err
		}
		c.io.Success("✓ Queued as entry %d: %s", id, req.Label)
		return nil
	}

	result, err := c.queue.Submit(ctx, req)
	if err != nil {
		return err
	}

	if result.Queued {
		c.io.Warning("⚠️  Backend unreachable, queued as entry %d: %s", result.ID, req.Label)
		c.io.Println("It will be replayed on 'fieldops queue drain' or automatically by 'fieldops watch'.")
		return nil
	}

	c.io.Success("✓ Delivered: %s", req.Label)
	return nil
}

func (c *Cli) runQueueDrain(ctx context.Context) error {
	c.io.Println("=== Replaying queued mutations ===")
	c.io.Println()

	if !c.monitor.Online() {
		c.io.Warning("⚠️  Backend is offline, nothing replayed.")
		c.io.Printf("Pending: %d, failed: %d\n", c.queue.PendingCount(ctx), c.queue.FailedCount(ctx))
		return nil
	}

	result, err := c.queue.Drain(ctx)
	if err != nil {
		return fmt.Errorf("drain failed: %w", err)
	}

	c.io.Printf("Synced:    %d\n", result.Synced)
	c.io.Printf("Failed:    %d\n", result.Failed)
	if result.Discarded > 0 {
		c.io.Printf("Discarded: %d\n", result.Discarded)
	}

	if len(result.Errors) > 0 {
		c.io.Println()
		for _, e := range result.Errors {
			c.io.Error("✗ %s", e.Error())
		}
		c.io.Println()
		c.io.Println("Use 'fieldops queue retry <id>' or 'fieldops queue discard <id>'.")
		return nil
	}

	c.io.Println()
	c.io.Success("✓ Queue is empty")
	return nil
}

func (c *Cli) runQueueRetry(ctx context.Context, id uint64) error {
	err := c.queue.RetryOne(ctx, id)
	if errors.Is(err, mutation.ErrOffline) {
		c.io.Warning("⚠️  Backend is offline, entry %d left in queue.", id)
		return nil
	}
	if err != nil {
		return err
	}

	c.io.Success("✓ Entry %d replayed", id)
	return nil
}

func (c *Cli) runQueueDiscard(ctx context.Context, id uint64, force bool) error {
	if !force {
		ok, err := c.io.Confirm(fmt.Sprintf("Discard entry %d without replaying it?", id))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	if err := c.queue.Discard(ctx, id); err != nil {
		return err
	}

	c.io.Success("✓ Entry %d discarded", id)
	return nil
}
