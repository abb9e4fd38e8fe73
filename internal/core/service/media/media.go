package media

import (
	"errors"
	"log/slog"
	"os"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

const (
	cacheControlImmutable = "public, max-age=31536000, immutable"
	defaultFileName       = "unknown"
	defaultMimeType       = "application/octet-stream"

	UploadOutcomeSuccess          = "success"
	UploadOutcomeInvalid          = "invalid"
	UploadOutcomeCompressionError = "compression_error"
	UploadOutcomeStorageError     = "storage_error"
	UploadOutcomePersistenceError = "persistence_error"
)

type mediaService struct {
	repo       port.MediaRepository
	store      port.ObjectStore
	compressor port.MediaCompressor
	guests     port.GuestService
	metrics    port.PipelineMetrics
	logger     *slog.Logger
}

// NewMediaService creates a new media service.
// A nil store makes every upload fail with domain.ErrStorageUnavailable.
func NewMediaService(repo port.MediaRepository, store port.ObjectStore, compressor port.MediaCompressor, guests port.GuestService, metrics port.PipelineMetrics, logger *slog.Logger) port.MediaService {
	return &mediaService{
		repo:       repo,
		store:      store,
		compressor: compressor,
		guests:     guests,
		metrics:    metrics,
		logger:     logger,
	}
}

func (s *mediaService) removeTempFiles(paths []string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to remove temp file", "path", path, "error", err)
		}
	}
}
