package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iudanet/fieldops/internal/models"
	"github.com/iudanet/fieldops/internal/relay"
)

// maxScanLine ограничение длины одной строки при чтении сканов
const maxScanLine = 1 << 20

type encodeOptions struct {
	Text        string
	Source      string
	Category    string
	ImagePath   string
	PNGDir      string
	Tags        []string
	Lat         float64
	Lng         float64
	Accuracy    float64
	Confidence  float64
	Severity    int
	Interactive bool
}

func (o encodeOptions) payload() (*models.RelayPayload, error) {
	if strings.TrimSpace(o.Text) == "" {
		return nil, fmt.Errorf("report text is required")
	}
	if o.Severity < 0 || o.Severity > 10 {
		return nil, fmt.Errorf("severity must be in [0, 10], got %d", o.Severity)
	}

	p := &models.RelayPayload{
		Source:    o.Source,
		Text:      o.Text,
		Timestamp: time.Now().UTC(),
		Location:  models.Location{Lat: o.Lat, Lng: o.Lng, Accuracy: o.Accuracy},
		Classification: models.Classification{
			Category:   o.Category,
			Severity:   o.Severity,
			Confidence: o.Confidence,
			Tags:       o.Tags,
		},
	}

	if o.ImagePath != "" {
		data, err := os.ReadFile(o.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
		p.Image = data
	}

	return p, nil
}

func (c *Cli) runRelayEncode(opts encodeOptions) error {
	p, err := opts.payload()
	if err != nil {
		return err
	}

	chunks, err := c.encoder.Encode(p)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	c.logger.Debug("Report encoded", "chunks", len(chunks))

	if opts.PNGDir != "" {
		if err := writeChunkImages(opts.PNGDir, chunks); err != nil {
			return err
		}
		c.io.Success("✓ %d QR code(s) written to %s", len(chunks), opts.PNGDir)
	}

	if opts.Interactive {
		return c.showChunks(relay.NewPager(chunks))
	}

	if opts.PNGDir == "" {
		for _, chunk := range chunks {
			c.io.Println(chunk)
		}
	}
	return nil
}

func writeChunkImages(dir string, chunks []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, chunk := range chunks {
		png, err := relay.RenderPNG(chunk, relay.DefaultPNGSize)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i+1, err)
		}

		name := filepath.Join(dir, fmt.Sprintf("chunk-%03d.png", i+1))
		if err := os.WriteFile(name, png, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// showChunks показывает QR коды по одному, листание командами n/p/q.
func (c *Cli) showChunks(pager *relay.Pager) error {
	for {
		code, err := relay.RenderTerminal(pager.Current())
		if err != nil {
			return err
		}

		c.io.Println(code)
		c.io.Printf("Chunk %s\n", pager.Label())

		if pager.Len() <= 1 {
			return nil
		}

		cmd, err := c.io.ReadInput("[n]ext, [p]rev, [q]uit: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		switch strings.ToLower(cmd) {
		case "", "n", "next":
			if !pager.Next() {
				c.io.Println("Already at the last chunk.")
			}
		case "p", "prev":
			if !pager.Prev() {
				c.io.Println("Already at the first chunk.")
			}
		case "q", "quit":
			return nil
		default:
			c.io.Warning("Unknown command %q", cmd)
		}
	}
}

// runRelayDecode скармливает приемнику сканы, по одному на строку.
func (c *Cli) runRelayDecode(inputs []io.Reader) error {
	var received int

	for _, in := range inputs {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxScanLine)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			progress, err := c.receiver.Feed(line)
			if err != nil {
				c.io.Error("✗ unreadable scan: %v", err)
				continue
			}

			if !progress.Complete {
				c.io.Printf("Received %d/%d chunks\n", progress.Received, progress.Total)
				continue
			}

			received++
			c.printPayload(progress.Payload)
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read scans: %w", err)
		}
	}

	if status := c.receiver.Status(); status.Total > 0 {
		c.io.Warning("⚠️  Transfer incomplete: %d/%d chunks, missing %s",
			status.Received, status.Total, formatIndexes(c.receiver.Missing()))
	}

	if received == 0 {
		return fmt.Errorf("no complete report received")
	}
	return nil
}

func (c *Cli) printPayload(p *models.RelayPayload) {
	c.io.Println()
	c.io.Success("✓ Report received")
	c.io.Println("=== Report ===")
	c.io.Printf("ID:        %s\n", p.ID)
	if p.Source != "" {
		c.io.Printf("Source:    %s\n", p.Source)
	}
	c.io.Printf("Time:      %s\n", p.Timestamp.Local().Format(time.RFC3339))
	c.io.Printf("Location:  %.6f,%.6f", p.Location.Lat, p.Location.Lng)
	if p.Location.Accuracy > 0 {
		c.io.Printf(" (±%.0f m)", p.Location.Accuracy)
	}
	c.io.Println()

	cls := p.Classification
	if cls.Category != "" {
		c.io.Printf("Category:  %s (severity %d)\n", cls.Category, cls.Severity)
	}
	if len(cls.Tags) > 0 {
		c.io.Printf("Tags:      %s\n", strings.Join(cls.Tags, ", "))
	}

	switch {
	case p.HasImage():
		c.io.Printf("Image:     %d bytes\n", len(p.Image))
	case p.ImageDropped:
		c.io.Warning("Image:     dropped by sender")
	}

	c.io.Println()
	c.io.Println(p.Text)
	c.io.Println()
}

// formatIndexes печатает номера фрагментов с единицы
func formatIndexes(idx []int) string {
	parts := make([]string, len(idx))
	for i, n := range idx {
		parts[i] = fmt.Sprint(n + 1)
	}
	return strings.Join(parts, ", ")
}
