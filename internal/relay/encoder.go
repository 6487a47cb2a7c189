// Package relay encodes disaster reports into chunk strings sized for
// visual codes and reassembles them on the scanning side.
package relay

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iudanet/fieldops/internal/models"
)

const (
	// DefaultSingleChunkCapacity payloads up to this length are sent as one chunk without header
	DefaultSingleChunkCapacity = 1000
	// DefaultChunkSize length of the data part of each chunk
	DefaultChunkSize = 800
)

// Options controls chunking and image downscaling.
type Options struct {
	SingleChunkCapacity int
	ChunkSize           int
	ImageMaxDimension   int
	ImageQuality        int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		SingleChunkCapacity: DefaultSingleChunkCapacity,
		ChunkSize:           DefaultChunkSize,
		ImageMaxDimension:   DefaultImageMaxDimension,
		ImageQuality:        DefaultImageQuality,
	}
}

// Validate проверяет параметры кодирования
func (o Options) Validate() error {
	if o.SingleChunkCapacity <= 0 {
		return fmt.Errorf("%w: single chunk capacity must be positive", ErrInvalidOptions)
	}
	if o.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidOptions)
	}
	if o.ChunkSize+maxHeaderLen > o.SingleChunkCapacity {
		return fmt.Errorf("%w: chunk size %d plus header (%d) exceeds single chunk capacity %d",
			ErrInvalidOptions, o.ChunkSize, maxHeaderLen, o.SingleChunkCapacity)
	}
	if o.ImageMaxDimension <= 0 {
		return fmt.Errorf("%w: image max dimension must be positive", ErrInvalidOptions)
	}
	if o.ImageQuality < 1 || o.ImageQuality > 100 {
		return fmt.Errorf("%w: image quality must be in [1, 100]", ErrInvalidOptions)
	}
	return nil
}

// Encoder turns reports into ordered chunk strings.
type Encoder struct {
	logger *slog.Logger
	opts   Options
}

// NewEncoder creates an encoder.
func NewEncoder(opts Options, logger *slog.Logger) (*Encoder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{opts: opts, logger: logger}, nil
}

// Encode serializes p into chunk strings. An image that cannot be shrunk is
// dropped and ImageDropped is set instead of failing. A payload without an
// ID gets a new UUID. p itself is not modified.
func (e *Encoder) Encode(p *models.RelayPayload) ([]string, error) {
	if p == nil {
		return nil, fmt.Errorf("payload is nil")
	}

	normalized := *p
	if normalized.ID == "" {
		normalized.ID = uuid.NewString()
	}

	if normalized.HasImage() {
		shrunk, err := ShrinkImage(normalized.Image, e.opts.ImageMaxDimension, e.opts.ImageQuality)
		if err != nil {
			e.logger.Warn("Dropping image from relay payload", "id", normalized.ID, "error", err)
			normalized.Image = nil
			normalized.ImageDropped = true
		} else {
			e.logger.Debug("Image shrunk", "id", normalized.ID, "from", len(p.Image), "to", len(shrunk))
			normalized.Image = shrunk
		}
	}

	compressed, err := marshalPayload(&normalized)
	if err != nil {
		return nil, err
	}

	if len(compressed) <= e.opts.SingleChunkCapacity {
		return []string{compressed}, nil
	}

	total := (len(compressed) + e.opts.ChunkSize - 1) / e.opts.ChunkSize
	if total > MaxChunks {
		return nil, fmt.Errorf("%w: %d chunks needed, at most %d allowed", ErrPayloadTooLarge, total, MaxChunks)
	}
	chunks := make([]string, 0, total)
	for i := 0; i < total; i++ {
		start := i * e.opts.ChunkSize
		end := min(start+e.opts.ChunkSize, len(compressed))
		chunks = append(chunks, formatChunk(models.RelayChunk{Index: i, Total: total, Data: compressed[start:end]}))
	}

	e.logger.Info("Payload split into chunks", "id", normalized.ID, "chunks", total, "size", len(compressed))

	return chunks, nil
}
