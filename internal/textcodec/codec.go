// Package textcodec compresses text into a compact ASCII string:
// raw DEFLATE followed by unpadded base64url. The output alphabet is
// [A-Za-z0-9_-], so it never contains the relay header delimiter.
package textcodec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
)

// maxDecompressed ограничивает размер распакованных данных
const maxDecompressed = 16 << 20

var encoding = base64.RawURLEncoding

// Compress deterministically compresses s.
func Compress(s string) (string, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("failed to create compressor: %w", err)
	}

	if _, err := io.WriteString(w, s); err != nil {
		return "", fmt.Errorf("failed to compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to flush compressor: %w", err)
	}

	return encoding.EncodeToString(buf.Bytes()), nil
}

// Decompress reverses Compress.
func Decompress(s string) (string, error) {
	raw, err := encoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid encoding: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer func() {
		_ = r.Close()
	}()

	out, err := io.ReadAll(io.LimitReader(r, maxDecompressed+1))
	if err != nil {
		return "", fmt.Errorf("failed to decompress: %w", err)
	}
	if len(out) > maxDecompressed {
		return "", fmt.Errorf("decompressed data exceeds %d bytes", maxDecompressed)
	}

	return string(out), nil
}
