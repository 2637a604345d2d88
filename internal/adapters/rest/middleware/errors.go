package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/philly/inkwell/internal/platform/apperror"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	BusinessCode string `json:"business_code,omitempty"`
	Context      any    `json:"context,omitempty"`
}

// WriteJSONError writes a JSON error response with consistent format.
func WriteJSONError(w http.ResponseWriter, code apperror.ErrorCode, message string, status int) {
	writeError(w, status, ErrorResponse{Error: string(code), Message: message})
}

// WriteAppError renders err as an error response. Anything that is not an
// AppError becomes a generic 500 so internal messages never leak.
func WriteAppError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		WriteJSONError(w, apperror.CodeInternalError, "internal server error", http.StatusInternalServerError)
		return
	}
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	writeError(w, status, ErrorResponse{
		Error:        string(appErr.Code),
		Message:      appErr.Message,
		BusinessCode: string(appErr.BusinessCode),
		Context:      appErr.Details,
	})
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Ignore encoding errors here as we're already in error handling
	_ = json.NewEncoder(w).Encode(body)
}
