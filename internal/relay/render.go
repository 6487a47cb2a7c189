package relay

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultPNGSize размер стороны PNG в пикселях
const DefaultPNGSize = 512

// RenderPNG renders one chunk as a QR code PNG.
func RenderPNG(chunk string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultPNGSize
	}

	q, err := qrcode.New(chunk, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to build QR code: %w", err)
	}

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return png, nil
}

// RenderTerminal renders one chunk as a QR code drawn with Unicode half blocks.
func RenderTerminal(chunk string) (string, error) {
	q, err := qrcode.New(chunk, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to build QR code: %w", err)
	}

	return q.ToSmallString(false), nil
}
