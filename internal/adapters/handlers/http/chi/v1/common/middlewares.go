package common

import "net/http"

// Middleware wraps a handler
type Middleware func(http.Handler) http.Handler

// Middlewares are the route guards handed to each handler's Routes.
// Bounded applies the request timeout and body size limit of JSON routes.
type Middlewares struct {
	Admin      Middleware
	UploadRate Middleware
	LikeRate   Middleware
	Bounded    Middleware
}

// Passthrough leaves the handler unchanged
func Passthrough(next http.Handler) http.Handler {
	return next
}

// WithDefaults replaces nil guards with Passthrough
func (m Middlewares) WithDefaults() Middlewares {
	if m.Admin == nil {
		m.Admin = Passthrough
	}
	if m.UploadRate == nil {
		m.UploadRate = Passthrough
	}
	if m.LikeRate == nil {
		m.LikeRate = Passthrough
	}
	if m.Bounded == nil {
		m.Bounded = Passthrough
	}
	return m
}
