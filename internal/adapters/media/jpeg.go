package media

import (
	"context"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// JPEGEncoder re-encodes images as JPEG and implements port.ImageEncoder
type JPEGEncoder struct{}

// NewJPEGEncoder creates a JPEGEncoder
func NewJPEGEncoder() *JPEGEncoder {
	return &JPEGEncoder{}
}

// EncodeJPEG decodes inputPath honoring EXIF orientation, fits it within
// maxDimension on both sides without upscaling, and writes a JPEG to outputPath.
func (e *JPEGEncoder) EncodeJPEG(ctx context.Context, inputPath string, outputPath string, maxDimension int, quality int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	img, err := imaging.Open(inputPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	out, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		out.Close()
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Close()
}
