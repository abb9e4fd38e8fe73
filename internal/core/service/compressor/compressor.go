package compressor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/google/uuid"
)

const (
	compressedImageExt  = ".jpg"
	compressedImageMime = "image/jpeg"
	compressedVideoExt  = ".mp4"
	compressedVideoMime = "video/mp4"
)

type mediaCompressor struct {
	encoder    port.ImageEncoder
	runner     port.TranscodeRunner
	gate       port.TranscodeGate
	metrics    port.PipelineMetrics
	strategies []Strategy
	cfg        config.UploadConfig
	logger     *slog.Logger
}

// NewMediaCompressor creates a compressor running the default strategy chain for videos
func NewMediaCompressor(encoder port.ImageEncoder, runner port.TranscodeRunner, gate port.TranscodeGate, metrics port.PipelineMetrics, cfg config.UploadConfig, logger *slog.Logger) port.MediaCompressor {
	return &mediaCompressor{
		encoder:    encoder,
		runner:     runner,
		gate:       gate,
		metrics:    metrics,
		strategies: DefaultStrategies(),
		cfg:        cfg,
		logger:     logger,
	}
}

// Compress dispatches on the MIME prefix.
// Images are resized and re-encoded, failure is fatal.
// Videos go through the strategy chain inside a gate slot and fall back to the original.
// Anything else passes through.
func (c *mediaCompressor) Compress(ctx context.Context, sourcePath string, mimeType string, originalExt string) (*domain.CompressionResult, error) {
	kind := domain.KindFromMimeType(mimeType)

	switch kind {
	case domain.MediaKindImage:
		return c.compressImage(ctx, c.newJob(sourcePath, kind, compressedImageExt))
	case domain.MediaKindVideo:
		return c.compressVideo(ctx, c.newJob(sourcePath, kind, compressedVideoExt), mimeType, originalExt), nil
	default:
		c.metrics.ObserveCompression(kind, false)
		return &domain.CompressionResult{
			Path:     sourcePath,
			Ext:      originalExt,
			MimeType: mimeType,
		}, nil
	}
}

func (c *mediaCompressor) newJob(sourcePath string, kind domain.MediaKind, targetExt string) domain.TranscodeJob {
	target := filepath.Join(filepath.Dir(sourcePath), domain.TempFilePrefix+"compressed-"+uuid.NewString()+targetExt)
	return domain.TranscodeJob{
		SourcePath: sourcePath,
		TargetPath: target,
		Kind:       kind,
	}
}

func (c *mediaCompressor) compressImage(ctx context.Context, job domain.TranscodeJob) (*domain.CompressionResult, error) {
	err := c.encoder.EncodeJPEG(ctx, job.SourcePath, job.TargetPath, c.cfg.ImageMaxDimension, c.cfg.ImageQuality)
	if err != nil {
		c.removeTemp(job.TargetPath)
		c.metrics.ObserveCompression(job.Kind, false)
		return nil, fmt.Errorf("%w: %w", domain.ErrImageCompression, err)
	}

	c.metrics.ObserveCompression(job.Kind, true)
	return &domain.CompressionResult{
		Path:       job.TargetPath,
		Ext:        compressedImageExt,
		MimeType:   compressedImageMime,
		Compressed: true,
	}, nil
}

func (c *mediaCompressor) compressVideo(ctx context.Context, job domain.TranscodeJob, mimeType string, originalExt string) *domain.CompressionResult {
	var strategy string
	err := c.gate.Run(ctx, func(ctx context.Context) error {
		var chainErr error
		strategy, chainErr = c.runChain(ctx, job)
		return chainErr
	})
	if err != nil {
		c.logger.Warn("video compression failed, uploading original", "source", job.SourcePath, "error", err)
		c.removeTemp(job.TargetPath)
		c.metrics.ObserveCompression(job.Kind, false)
		return &domain.CompressionResult{
			Path:     job.SourcePath,
			Ext:      originalExt,
			MimeType: mimeType,
		}
	}

	c.metrics.ObserveCompression(job.Kind, true)
	return &domain.CompressionResult{
		Path:       job.TargetPath,
		Ext:        compressedVideoExt,
		MimeType:   compressedVideoMime,
		Compressed: true,
		Strategy:   strategy,
	}
}

func (c *mediaCompressor) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.logger.Warn("failed to remove temp file", "path", path, "error", err)
	}
}
