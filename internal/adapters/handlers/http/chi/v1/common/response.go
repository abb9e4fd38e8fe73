package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Envelope is the JSON body of every API response
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// WriteJSON writes body as JSON with status
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("error encoding response", "error", err)
	}
}

// OK writes a success envelope
func OK(w http.ResponseWriter, logger *slog.Logger, status int, message string, data any) {
	WriteJSON(w, logger, status, Envelope{Success: true, Message: message, Data: data})
}

// List writes a success envelope carrying a count
func List[T any](w http.ResponseWriter, logger *slog.Logger, data []T) {
	count := len(data)
	WriteJSON(w, logger, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// Fail writes an error envelope, err is exposed as the error field when set
func Fail(w http.ResponseWriter, logger *slog.Logger, status int, message string, err error) {
	body := Envelope{Success: false, Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	WriteJSON(w, logger, status, body)
}

// DecodeJSON decodes the request body into dst and validates its struct tags
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// Validate checks the struct tags of v
func Validate(v any) error {
	return validate.Struct(v)
}

// ValidationMessage renders a decode or validation error as a short message
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request body"
	}

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}
