package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

// HandleUpload compresses, stores and records one uploaded file.
// It runs detached from the caller's cancellation and always removes the temp files it was handed or created.
func (s *mediaService) HandleUpload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	ctx = context.WithoutCancel(ctx)
	tempFiles := []string{req.SourcePath}
	defer func() { s.removeTempFiles(tempFiles) }()

	if req.SourcePath == "" {
		s.metrics.ObserveUpload(UploadOutcomeInvalid)
		return nil, domain.ErrMissingFile
	}
	if s.store == nil {
		s.metrics.ObserveUpload(UploadOutcomeStorageError)
		return nil, domain.ErrStorageUnavailable
	}

	category := domain.NormalizeCategory(req.Category)
	folder := domain.ResolveFolder(req.DeviceID, req.Category)
	originalExt := strings.ToLower(filepath.Ext(req.FileName))
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	compressed, err := s.compressor.Compress(ctx, req.SourcePath, mimeType, originalExt)
	if err != nil {
		s.metrics.ObserveUpload(UploadOutcomeCompressionError)
		return nil, err
	}
	if compressed.Path != req.SourcePath {
		tempFiles = append(tempFiles, compressed.Path)
	}

	storageFileName := uuid.NewString() + compressed.Ext
	key := folder + "/" + storageFileName

	object, err := s.store.Put(ctx, compressed.Path, key, domain.ObjectOptions{
		ContentType:        compressed.MimeType,
		CacheControl:       cacheControlImmutable,
		ContentDisposition: fmt.Sprintf("inline; filename=%q", storageFileName),
	})
	if err != nil {
		s.metrics.ObserveUpload(UploadOutcomeStorageError)
		return nil, fmt.Errorf("%w: %w", domain.ErrObjectUpload, err)
	}

	downloadURL, err := s.store.DurableURL(ctx, *object)
	if err != nil {
		return nil, s.orphaned(key, fmt.Errorf("%w: %w", domain.ErrObjectUpload, err))
	}

	if req.DeviceID != "" {
		if _, err := s.guests.RecordUpload(ctx, req.DeviceID, req.UploaderName, req.UploaderPhone); err != nil {
			return nil, s.orphaned(key, fmt.Errorf("%w: %w", domain.ErrPersistence, err))
		}
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = defaultFileName
	}

	media := domain.Media{
		ID:              uuid.New(),
		FileName:        fileName,
		StorageFileName: storageFileName,
		StorageURL:      downloadURL,
		StorageFolder:   folder,
		MimeType:        compressed.MimeType,
		Size:            object.Size,
		Category:        category,
		IsApproved:      true,
		Compressed:      compressed.Compressed,
		UploaderName:    req.UploaderName,
		UploaderPhone:   req.UploaderPhone,
		DeviceID:        req.DeviceID,
		UploadDate:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, media); err != nil {
		return nil, s.orphaned(key, fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}

	s.metrics.ObserveUpload(UploadOutcomeSuccess)
	s.logger.Info("media uploaded",
		"doc_id", media.ID,
		"key", key,
		"mime_type", media.MimeType,
		"compressed", media.Compressed,
		"strategy", compressed.Strategy,
	)

	return &domain.UploadResult{
		DownloadURL:   downloadURL,
		DocID:         media.ID,
		StorageFolder: folder,
		Compressed:    compressed.Compressed,
	}, nil
}

func (s *mediaService) orphaned(key string, err error) error {
	s.metrics.ObserveUpload(UploadOutcomePersistenceError)
	s.logger.Error("stored object has no media record", "key", key, "error", err)
	return err
}
