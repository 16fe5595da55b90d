// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/kanzfinance/kanz-middleware/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	ErrMsg         string   `json:"error"`
	ErrMsgCode     int      `json:"code"`
	Kind           string   `json:"kind"`
	Reason         string   `json:"reason,omitempty"`
	Detail         string   `json:"detail,omitempty"`
	CurrentStatus  string   `json:"current_status,omitempty"`
	RequiredStatus []string `json:"required_status,omitempty"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
// This allows using clean error-returning handlers with any router (chi, http.ServeMux, etc.)
//
// Usage with chi:
//
//	r.Post("/executions", http.HandleError(handler.create))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler handles errors returned from HTTP handlers
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError

	if errors.As(err, &svcErr) {
		WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
			ErrMsg:         svcErr.Message,
			ErrMsgCode:     svcErr.StatusCode(),
			Kind:           svcErr.Category.Kind(),
			Reason:         svcErr.Reason,
			Detail:         svcErr.Detail,
			CurrentStatus:  svcErr.CurrentStatus,
			RequiredStatus: svcErr.RequiredStatus,
		})
		return
	}

	// Handle unknown errors
	WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
		Kind:       apperrors.CategoryGeneralError.Kind(),
	})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
