package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/event"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/guest"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/reminder"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/section"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/setting"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/wish"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/ratelimit/redis"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	defaultRequestTimeout = 60 * time.Second
	defaultJSONBodyLimit  = 5 << 20 //5mb
)

// Handlers are the v1 handlers mounted under /api, nil handlers are skipped
type Handlers struct {
	Media    *media.HandlerV1
	Guest    *guest.HandlerV1
	Wish     *wish.HandlerV1
	Reminder *reminder.HandlerV1
	Event    *event.HandlerV1
	Section  *section.HandlerV1
	Setting  *setting.HandlerV1
	Auth     *auth.HandlerV1
}

// RouterConfig carries the router dependencies that are not handlers
type RouterConfig struct {
	Env string
	// AuthService guards admin routes. Without it admin routes answer 503.
	AuthService port.AuthService
	// Limiter throttles uploads and likes. Without it nothing is throttled.
	Limiter port.RateLimiter
	// Metrics is served on /metrics when set
	Metrics http.Handler
	// RequestTimeout and JSONBodyLimit bound every route but the upload
	RequestTimeout time.Duration
	JSONBodyLimit  int64
}

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, handlers Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	if cfg.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Admin-Seed"},
			ExposedHeaders:   []string{"Link", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	bounded := boundedBy(cfg.RequestTimeout, cfg.JSONBodyLimit)
	mw := common.Middlewares{
		Admin:      RequireAdmin(cfg.AuthService, logger),
		UploadRate: RateLimit(cfg.Limiter, redis.ActionUpload, logger),
		LikeRate:   RateLimit(cfg.Limiter, redis.ActionLike, logger),
		Bounded:    bounded,
	}

	r.Route("/api", func(r chi.Router) {
		// uploads stream large bodies and outlive the request timeout
		if handlers.Media != nil {
			r.Mount("/media", handlers.Media.Routes(mw))
		}

		r.Group(func(r chi.Router) {
			r.Use(bounded)
			if handlers.Guest != nil {
				r.Mount("/guests", handlers.Guest.Routes(mw))
			}
			if handlers.Wish != nil {
				r.Mount("/wishes", handlers.Wish.Routes(mw))
			}
			if handlers.Reminder != nil {
				r.Mount("/reminders", handlers.Reminder.Routes(mw))
			}
			if handlers.Event != nil {
				r.Mount("/events", handlers.Event.Routes(mw))
			}
			if handlers.Section != nil {
				r.Mount("/sections", handlers.Section.Routes(mw))
			}
			if handlers.Setting != nil {
				r.Mount("/settings", handlers.Setting.Routes(mw))
			}
			if handlers.Auth != nil {
				r.Mount("/auth", handlers.Auth.Routes(mw))
			}
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	return r
}

func boundedBy(timeout time.Duration, bodyLimit int64) common.Middleware {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if bodyLimit <= 0 {
		bodyLimit = defaultJSONBodyLimit
	}
	return func(next http.Handler) http.Handler {
		return middleware.Timeout(timeout)(middleware.RequestSize(bodyLimit)(next))
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
