package chi

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/handlers/http/chi/v1/common"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware is a custom logging middleware
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if r.URL.Path != "/health" && r.URL.Path != "/metrics" {

					l.Info("http_request",
						"request_id", middleware.GetReqID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"status", ww.Status(),
						"duration", time.Since(start),
					)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// RequireAdmin rejects requests without a valid admin bearer token
func RequireAdmin(auth port.AuthService, l *slog.Logger) common.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth == nil {
				common.Fail(w, l, http.StatusServiceUnavailable, "Admin authentication is not configured", nil)
				return
			}

			token, ok := common.BearerToken(r)
			if !ok {
				common.Fail(w, l, http.StatusUnauthorized, "Access denied. No token provided.", nil)
				return
			}

			if _, err := auth.VerifyToken(r.Context(), token); err != nil {
				if !errors.Is(err, domain.ErrInvalidToken) {
					l.Warn("admin token verification failed", "error", err)
				}
				common.Fail(w, l, http.StatusUnauthorized, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit throttles requests per client IP for action.
// Limiter failures let the request through.
func RateLimit(limiter port.RateLimiter, action string, l *slog.Logger) common.Middleware {
	if limiter == nil {
		return common.Passthrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key, action)
			if err != nil {
				l.Warn("rate limiter unavailable", "action", action, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if remaining, err := limiter.GetRemaining(r.Context(), key, action); err == nil {
				w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			}

			if !allowed {
				common.Fail(w, l, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
