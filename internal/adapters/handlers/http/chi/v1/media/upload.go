package media

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/google/uuid"
)

const (
	mediaField     = "media"
	maxFieldBytes  = 4 << 10
	formOverhead   = 1 << 20
	bytesPerMegaMB = 1 << 20
)

// V1UploadResponse is the data of a successful upload
type V1UploadResponse struct {
	DownloadURL   string    `json:"downloadUrl"`
	DocID         uuid.UUID `json:"docId"`
	StorageFolder string    `json:"storageFolder"`
	Compressed    bool      `json:"compressed"`
}

// UploadV1 streams the multipart body to a temp file and runs the media pipeline
func (h *HandlerV1) UploadV1(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseUpload(w, r)
	if err != nil {
		if req.SourcePath != "" {
			_ = os.Remove(req.SourcePath)
		}
		h.writeUploadError(w, err)
		return
	}

	result, err := h.mediaService.HandleUpload(r.Context(), req)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	common.OK(w, h.logger, http.StatusOK, "Media uploaded successfully!", V1UploadResponse{
		DownloadURL:   result.DownloadURL,
		DocID:         result.DocID,
		StorageFolder: result.StorageFolder,
		Compressed:    result.Compressed,
	})
}

// parseUpload reads the form fields and the single "media" file part.
// The returned request carries the temp file path even on error so the caller can remove it.
func (h *HandlerV1) parseUpload(w http.ResponseWriter, r *http.Request) (domain.UploadRequest, error) {
	var req domain.UploadRequest

	r.Body = http.MaxBytesReader(w, r.Body, h.uploadCfg.MaxFileSize+formOverhead)
	reader, err := r.MultipartReader()
	if err != nil {
		return req, fmt.Errorf("%w: %w", domain.ErrInvalidForm, err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return req, classifyReadError(err)
		}

		switch {
		case part.FormName() == mediaField && part.FileName() != "":
			if req.SourcePath != "" {
				part.Close()
				return req, domain.ErrMultipleFiles
			}
			req.FileName = filepath.Base(part.FileName())
			req.MimeType = partMimeType(part)
			req.SourcePath, req.Size, err = h.spool(part)
			if err != nil {
				return req, err
			}
		case part.FileName() != "":
			_, _ = io.Copy(io.Discard, part)
		default:
			value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
			if err != nil {
				part.Close()
				return req, classifyReadError(err)
			}
			assignField(&req, part.FormName(), strings.TrimSpace(string(value)))
		}
		part.Close()
	}

	if req.SourcePath == "" {
		return req, domain.ErrMissingFile
	}
	return req, nil
}

// spool copies a file part into a prefixed temp file, enforcing the size limit
func (h *HandlerV1) spool(part *multipart.Part) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(part.FileName()))
	tmp, err := os.CreateTemp(h.uploadCfg.TempDir, domain.TempFilePrefix+"*"+ext)
	if err != nil {
		return "", 0, fmt.Errorf("could not create temp file: %w", err)
	}
	path := tmp.Name()

	written, err := io.Copy(tmp, io.LimitReader(part, h.uploadCfg.MaxFileSize+1))
	closeErr := tmp.Close()
	switch {
	case err != nil:
		return path, written, classifyReadError(err)
	case closeErr != nil:
		return path, written, fmt.Errorf("could not write temp file: %w", closeErr)
	case written > h.uploadCfg.MaxFileSize:
		return path, written, domain.ErrPayloadTooLarge
	}
	return path, written, nil
}

func classifyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return domain.ErrPayloadTooLarge
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidForm, err)
}

func partMimeType(part *multipart.Part) string {
	if contentType := part.Header.Get("Content-Type"); contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			return mediaType
		}
	}
	if byExt := mime.TypeByExtension(filepath.Ext(part.FileName())); byExt != "" {
		mediaType, _, _ := mime.ParseMediaType(byExt)
		return mediaType
	}
	return ""
}

func assignField(req *domain.UploadRequest, name string, value string) {
	switch name {
	case "uploaderName":
		req.UploaderName = value
	case "uploaderPhone":
		req.UploaderPhone = value
	case "deviceId":
		req.DeviceID = value
	case "category":
		req.Category = value
	}
}

func (h *HandlerV1) writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPayloadTooLarge):
		common.Fail(w, h.logger, http.StatusBadRequest,
			fmt.Sprintf("File size limit exceeded (max %d MB)", h.uploadCfg.MaxFileSize/bytesPerMegaMB), nil)
	case errors.Is(err, domain.ErrMissingFile), errors.Is(err, domain.ErrMultipleFiles):
		common.Fail(w, h.logger, http.StatusBadRequest, capitalize(err.Error()), nil)
	case errors.Is(err, domain.ErrInvalidForm):
		h.logger.Warn("error parsing upload form", "error", err)
		common.Fail(w, h.logger, http.StatusBadRequest, "Error parsing form data", nil)
	case errors.Is(err, domain.ErrImageCompression):
		common.Fail(w, h.logger, http.StatusInternalServerError, "Error compressing image", err)
	case errors.Is(err, domain.ErrStorageUnavailable):
		common.Fail(w, h.logger, http.StatusInternalServerError,
			"Object storage is not configured. Please check the storage settings.", err)
	case errors.Is(err, domain.ErrObjectUpload):
		common.Fail(w, h.logger, http.StatusInternalServerError, "Error uploading media", err)
	case errors.Is(err, domain.ErrPersistence):
		common.Fail(w, h.logger, http.StatusInternalServerError,
			"Media was stored but its record could not be saved; manual reconciliation may be needed", err)
	default:
		h.logger.Error("error processing upload", "error", err)
		common.Fail(w, h.logger, http.StatusInternalServerError, "Error processing upload request", err)
	}
}

func capitalize(message string) string {
	if message == "" {
		return message
	}
	return strings.ToUpper(message[:1]) + message[1:]
}
