package relay

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // камеры Android часто отдают webp
)

const (
	// DefaultImageMaxDimension наибольшая сторона изображения после уменьшения
	DefaultImageMaxDimension = 320
	// DefaultImageQuality качество JPEG после уменьшения
	DefaultImageQuality = 50
)

// ShrinkImage decodes a JPEG, PNG, GIF, BMP, TIFF or WebP image, fits it
// into maxDim x maxDim and re-encodes it as JPEG at the given quality.
// Images already within bounds are only re-encoded.
func ShrinkImage(data []byte, maxDim, quality int) ([]byte, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("%w: image max dimension must be positive", ErrInvalidOptions)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
