package relay

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldops/internal/models"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// randomText возвращает плохо сжимаемый детерминированный текст
func randomText(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	r := rand.New(rand.NewSource(42))
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func testPayload(text string) *models.RelayPayload {
	return &models.RelayPayload{
		ID:        "b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5",
		Source:    "device-7",
		Text:      text,
		Location:  models.Location{Lat: 18.5204, Lng: 73.8567, Accuracy: 12.5},
		Timestamp: time.Date(2026, 7, 14, 9, 30, 15, 250000000, time.UTC),
		Classification: models.Classification{
			Category:   "flood",
			Severity:   8,
			Confidence: 0.91,
			Tags:       []string{"roof", "children"},
		},
	}
}

// testPNG создает PNG с градиентом заданного размера
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestEncoder(t *testing.T, opts Options) *Encoder {
	t.Helper()

	enc, err := NewEncoder(opts, newTestLogger())
	require.NoError(t, err)
	return enc
}

func splitChunks(t *testing.T, chunks []string) []string {
	t.Helper()
	for _, c := range chunks {
		require.True(t, strings.HasPrefix(c, ChunkPrefix+Delimiter), c)
	}
	return chunks
}
