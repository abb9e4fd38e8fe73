package media

import (
	"log/slog"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for media routes
type HandlerV1 struct {
	mediaService port.MediaService
	uploadCfg    config.UploadConfig
	logger       *slog.Logger
}

// NewMediaHandlerV1 creates HandlerV1
func NewMediaHandlerV1(service port.MediaService, uploadCfg config.UploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		mediaService: service,
		uploadCfg:    uploadCfg,
		logger:       logger,
	}
}

// Routes exposes routes, the upload route sits outside the JSON group
func (h *HandlerV1) Routes(mw common.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.With(mw.UploadRate).Post("/upload", h.UploadV1)

	router.Group(func(r chi.Router) {
		r.Use(mw.Bounded)
		r.Get("/", h.ListMediaV1)
		r.Get("/{mediaID}", h.GetMediaV1)
		r.With(mw.Admin).Put("/{mediaID}", h.UpdateMediaV1)
		r.With(mw.Admin).Delete("/{mediaID}", h.DeleteMediaV1)
		r.With(mw.LikeRate).Post("/{mediaID}/like", h.LikeMediaV1)
	})

	return router
}

// V1Media is the JSON shape of a media record
type V1Media struct {
	ID              uuid.UUID  `json:"id"`
	FileName        string     `json:"fileName"`
	StorageFileName string     `json:"storageFileName"`
	StorageURL      string     `json:"storageUrl"`
	StorageFolder   string     `json:"storageFolder"`
	MimeType        string     `json:"mimeType"`
	Size            int64      `json:"size"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
	IsApproved      bool       `json:"isApproved"`
	Likes           int        `json:"likes"`
	Compressed      bool       `json:"compressed"`
	UploaderName    string     `json:"uploaderName,omitempty"`
	UploaderPhone   string     `json:"uploaderPhone,omitempty"`
	DeviceID        string     `json:"deviceId,omitempty"`
	UploadDate      time.Time  `json:"uploadDate"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func toV1Media(m domain.Media) V1Media {
	return V1Media{
		ID:              m.ID,
		FileName:        m.FileName,
		StorageFileName: m.StorageFileName,
		StorageURL:      m.StorageURL,
		StorageFolder:   m.StorageFolder,
		MimeType:        m.MimeType,
		Size:            m.Size,
		Category:        m.Category,
		Description:     m.Description,
		IsApproved:      m.IsApproved,
		Likes:           m.Likes,
		Compressed:      m.Compressed,
		UploaderName:    m.UploaderName,
		UploaderPhone:   m.UploaderPhone,
		DeviceID:        m.DeviceID,
		UploadDate:      m.UploadDate,
		UpdatedAt:       m.UpdatedAt,
	}
}
