package relay

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/fieldops/internal/models"
	"github.com/iudanet/fieldops/internal/textcodec"
)

const (
	// ChunkPrefix starts every chunk of a multi-chunk transfer.
	ChunkPrefix = "RELAY_CHUNK"
	// Delimiter separates header fields from each other and from the data.
	Delimiter = "|"
	// MaxChunks upper bound on the chunk count of one transfer.
	MaxChunks = 1000
)

// maxHeaderLen длина самого длинного заголовка "RELAY_CHUNK|999|1000|".
var maxHeaderLen = len(ChunkPrefix) + 3*len(Delimiter) + 2*len(strconv.Itoa(MaxChunks))

// wirePayload плоская запись для передачи, короткие ключи экономят место в коде
type wirePayload struct {
	ID         string   `json:"i"`
	Source     string   `json:"s,omitempty"`
	Text       string   `json:"t"`
	Timestamp  string   `json:"ts"`
	Category   string   `json:"c,omitempty"`
	Tags       []string `json:"tg,omitempty"`
	Image      []byte   `json:"im,omitempty"`
	Lat        float64  `json:"la"`
	Lng        float64  `json:"ln"`
	Accuracy   float64  `json:"ac,omitempty"`
	Confidence float64  `json:"cf,omitempty"`
	Severity   int      `json:"sv,omitempty"`
	NoImage    bool     `json:"ni,omitempty"`
}

func flatten(p *models.RelayPayload) wirePayload {
	return wirePayload{
		ID:         p.ID,
		Source:     p.Source,
		Text:       p.Text,
		Timestamp:  p.Timestamp.UTC().Format(time.RFC3339Nano),
		Lat:        p.Location.Lat,
		Lng:        p.Location.Lng,
		Accuracy:   p.Location.Accuracy,
		Category:   p.Classification.Category,
		Severity:   p.Classification.Severity,
		Confidence: p.Classification.Confidence,
		Tags:       p.Classification.Tags,
		Image:      p.Image,
		NoImage:    p.ImageDropped,
	}
}

func (w wirePayload) payload() (*models.RelayPayload, error) {
	ts, err := time.Parse(time.RFC3339Nano, w.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.RelayPayload{
		ID:        w.ID,
		Source:    w.Source,
		Text:      w.Text,
		Timestamp: ts.UTC(),
		Location:  models.Location{Lat: w.Lat, Lng: w.Lng, Accuracy: w.Accuracy},
		Classification: models.Classification{
			Category:   w.Category,
			Severity:   w.Severity,
			Confidence: w.Confidence,
			Tags:       w.Tags,
		},
		Image:        w.Image,
		ImageDropped: w.NoImage,
	}, nil
}

// marshalPayload сериализует и сжимает полезную нагрузку
func marshalPayload(p *models.RelayPayload) (string, error) {
	data, err := json.Marshal(flatten(p))
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	compressed, err := textcodec.Compress(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to compress payload: %w", err)
	}

	return compressed, nil
}

// unmarshalPayload обратная операция к marshalPayload
func unmarshalPayload(s string) (*models.RelayPayload, error) {
	raw, err := textcodec.Decompress(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	var w wirePayload
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	p, err := w.payload()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	return p, nil
}

// formatChunk строит строку фрагмента RELAY_CHUNK|<index>|<total>|<data>
func formatChunk(c models.RelayChunk) string {
	return ChunkPrefix + Delimiter + strconv.Itoa(c.Index) + Delimiter + strconv.Itoa(c.Total) + Delimiter + c.Data
}

// isChunk reports whether scan carries a chunk header.
func isChunk(scan string) bool {
	return strings.HasPrefix(scan, ChunkPrefix+Delimiter)
}

// ParseChunk parses a chunk string. It returns ErrCorruptChunk for a string
// that starts with the chunk prefix but is otherwise malformed.
func ParseChunk(scan string) (models.RelayChunk, error) {
	if !isChunk(scan) {
		return models.RelayChunk{}, fmt.Errorf("%w: missing %s header", ErrCorruptChunk, ChunkPrefix)
	}

	parts := strings.SplitN(scan, Delimiter, 4)
	if len(parts) != 4 {
		return models.RelayChunk{}, fmt.Errorf("%w: incomplete header", ErrCorruptChunk)
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.RelayChunk{}, fmt.Errorf("%w: bad index %q", ErrCorruptChunk, parts[1])
	}

	total, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.RelayChunk{}, fmt.Errorf("%w: bad total %q", ErrCorruptChunk, parts[2])
	}

	if total > MaxChunks {
		return models.RelayChunk{}, fmt.Errorf("%w: total %d exceeds %d chunks", ErrCorruptChunk, total, MaxChunks)
	}

	if total < 1 || index < 0 || index >= total {
		return models.RelayChunk{}, fmt.Errorf("%w: index %d out of range for total %d", ErrCorruptChunk, index, total)
	}

	if parts[3] == "" {
		return models.RelayChunk{}, fmt.Errorf("%w: empty data", ErrCorruptChunk)
	}

	return models.RelayChunk{Index: index, Total: total, Data: parts[3]}, nil
}
