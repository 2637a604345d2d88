package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/philly/inkwell/internal/adapters/rest/middleware"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/upload"
	"github.com/philly/inkwell/internal/platform/validator"
)

const maxJSONBody = 1 << 20

var (
	ErrInvalidBody = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeInvalidFormat,
		"invalid request body",
		http.StatusBadRequest,
	)
	ErrValidation = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"request validation failed",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeInvalidFormat,
		"id must be a positive integer",
		http.StatusBadRequest,
	)
	ErrMissingFile = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeInvalidImageFile,
		"multipart field \"file\" is required",
		http.StatusBadRequest,
	)
)

// BaseHandler contains common dependencies and helper methods for all handlers
type BaseHandler struct {
	logger logger.Logger
}

// NewBaseHandler creates a new base handler with common dependencies
func NewBaseHandler(logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// WriteJSONError writes a JSON error response in the shared error format
func (h *BaseHandler) WriteJSONError(w http.ResponseWriter, r *http.Request, code apperror.ErrorCode, message string, statusCode int) {
	middleware.WriteJSONError(w, code, message, statusCode)
}

// WriteJSONResponse writes a successful JSON response
func (h *BaseHandler) WriteJSONResponse(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode response",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// HandleError renders a service error. Server-side failures are logged with
// their cause; the response only ever carries the public message.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.As(err)
	switch {
	case !ok:
		h.logger.Error(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
	case appErr.HTTPStatus >= http.StatusInternalServerError:
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err, "cause", appErr.Inner)
	default:
		h.logger.Debug(r.Context(), "request rejected", "path", r.URL.Path, "code", appErr.Code, "business_code", appErr.BusinessCode)
	}
	middleware.WriteAppError(w, err)
}

// DecodeJSON reads a JSON body into dst and runs its validate tags.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrInvalidBody.WithMessage("request body is empty")
		}
		return ErrInvalidBody.WithInner(err)
	}
	fields, err := validator.Struct(dst)
	if err != nil {
		return ErrInvalidBody.WithInner(err)
	}
	if len(fields) > 0 {
		return ErrValidation.WithMessage(fields[0].Message).WithDetails(fields)
	}
	return nil
}

// Principal is the caller resolved by the route's gate, nil when anonymous.
func (h *BaseHandler) Principal(r *http.Request) *authz.Principal {
	return middleware.PrincipalFrom(r.Context())
}

// ReadUpload returns the multipart "file" part. The caller closes it.
func (h *BaseHandler) ReadUpload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxImageBytes+maxJSONBody)
	file, _, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrInvalidBody.WithMessage(upload.ErrTooLarge.Error())
		}
		return nil, ErrMissingFile
	}
	return file, nil
}
