package domain

import (
	"strings"

	"github.com/google/uuid"
)

// TempFilePrefix prefixes every temp file the media pipeline writes
const TempFilePrefix = "wedding-upload-"

// MediaKind represents the broad kind of uploaded media
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
	MediaKindOther MediaKind = "other"
)

// KindFromMimeType resolves the media kind from a MIME type prefix
func KindFromMimeType(mimeType string) MediaKind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaKindImage
	case strings.HasPrefix(mimeType, "video/"):
		return MediaKindVideo
	default:
		return MediaKindOther
	}
}

// UploadRequest represents a parsed multipart upload.
// SourcePath is a temp file owned by the pipeline once handed over.
type UploadRequest struct {
	SourcePath    string
	FileName      string
	MimeType      string
	Size          int64
	UploaderName  string
	UploaderPhone string
	DeviceID      string
	Category      string
}

// TranscodeJob represents one compression run of a source temp file into a target temp file
type TranscodeJob struct {
	SourcePath string
	TargetPath string
	Kind       MediaKind
}

// CompressionResult represents the outcome of a compression run
type CompressionResult struct {
	Path       string
	Ext        string
	MimeType   string
	Compressed bool
	Strategy   string
}

// UploadResult represents the response of a successful upload
type UploadResult struct {
	DownloadURL   string
	DocID         uuid.UUID
	StorageFolder string
	Compressed    bool
}

// ObjectOptions are the headers stored alongside an object
type ObjectOptions struct {
	ContentType        string
	CacheControl       string
	ContentDisposition string
}

// StoredObject is a handle to an object written in the object store
type StoredObject struct {
	Key  string
	Size int64
	ETag string
}
