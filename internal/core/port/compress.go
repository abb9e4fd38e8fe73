package port

import (
	"context"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// MediaCompressor is an interface to define the type-dispatching compression step
type MediaCompressor interface {
	Compress(ctx context.Context, sourcePath string, mimeType string, originalExt string) (*domain.CompressionResult, error)
}

// TranscodeRunner runs one external transcode of inputPath into outputPath with the given encoder options
type TranscodeRunner interface {
	Transcode(ctx context.Context, inputPath string, outputPath string, options []string) error
}

// ImageEncoder resizes an image to fit maxDimension and writes it as JPEG
type ImageEncoder interface {
	EncodeJPEG(ctx context.Context, inputPath string, outputPath string, maxDimension int, quality int) error
}

// TranscodeGate bounds the number of simultaneous transcodes
type TranscodeGate interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
	InFlight() int
	Limit() int
}

// PipelineMetrics records media pipeline outcomes
type PipelineMetrics interface {
	ObserveStrategy(strategy string, success bool, duration time.Duration)
	ObserveCompression(kind domain.MediaKind, compressed bool)
	ObserveUpload(outcome string)
}
