package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/philly/inkwell/internal/platform/apperror"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		code         apperror.ErrorCode
		businessCode apperror.BusinessCode
		message      string
		httpStatus   int
	}{
		{
			name:         "creates not found error",
			code:         apperror.CodeNotFound,
			businessCode: apperror.BusinessCodePostNotFound,
			message:      "post not found",
			httpStatus:   http.StatusNotFound,
		},
		{
			name:         "creates validation error",
			code:         apperror.CodeValidationFailed,
			businessCode: apperror.BusinessCodeCommentTooLong,
			message:      "comment must not exceed 500 characters",
			httpStatus:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperror.New(tt.code, tt.businessCode, tt.message, tt.httpStatus)

			if err.Code != tt.code {
				t.Errorf("expected code %v, got %v", tt.code, err.Code)
			}
			if err.BusinessCode != tt.businessCode {
				t.Errorf("expected business code %v, got %v", tt.businessCode, err.BusinessCode)
			}
			if err.Message != tt.message {
				t.Errorf("expected message %v, got %v", tt.message, err.Message)
			}
			if err.HTTPStatus != tt.httpStatus {
				t.Errorf("expected HTTP status %v, got %v", tt.httpStatus, err.HTTPStatus)
			}
			if err.Inner != nil {
				t.Errorf("expected no inner error, got %v", err.Inner)
			}
			if err.Details != nil {
				t.Errorf("expected no details, got %v", err.Details)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	innerErr := errors.New("connection refused")

	err := apperror.Wrap(
		innerErr,
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"failed to list posts",
		http.StatusInternalServerError,
	)

	if err.Inner != innerErr {
		t.Errorf("expected inner error %v, got %v", innerErr, err.Inner)
	}
	if !errors.Is(err, innerErr) {
		t.Errorf("expected errors.Is to reach the inner error")
	}
}

func TestWithDetailsLeavesSentinelUntouched(t *testing.T) {
	sentinel := apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidUsername,
		"invalid username",
		http.StatusBadRequest,
	)

	withDetails := sentinel.WithDetails(map[string]string{"field": "username"})

	if withDetails == sentinel {
		t.Fatal("WithDetails must return a copy")
	}
	if sentinel.Details != nil {
		t.Errorf("sentinel details were mutated: %v", sentinel.Details)
	}
	if withDetails.Details == nil {
		t.Error("expected details on the copy")
	}
	if !errors.Is(withDetails, sentinel) {
		t.Error("copy should still match the sentinel")
	}
}

func TestWithMessageAndInner(t *testing.T) {
	sentinel := apperror.New(
		apperror.CodeUpstreamFailure,
		apperror.BusinessCodeAuthProviderError,
		"auth provider rejected the request",
		http.StatusBadRequest,
	)
	inner := errors.New("email already registered")

	err := sentinel.WithMessage("email already registered").WithInner(inner)

	if err.Message != "email already registered" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Unwrap() != inner {
		t.Errorf("expected inner error to be set")
	}
	if sentinel.Message != "auth provider rejected the request" || sentinel.Inner != nil {
		t.Errorf("sentinel was mutated: %+v", sentinel)
	}
}

func TestAs(t *testing.T) {
	appErr := apperror.New(apperror.CodeConflict, apperror.BusinessCodeUsernameTaken, "username taken", http.StatusConflict)
	wrapped := fmt.Errorf("ProfilesService.Update: %w", appErr)

	got, ok := apperror.As(wrapped)
	if !ok || got != appErr {
		t.Fatalf("expected to extract the AppError, got %v, %v", got, ok)
	}

	if _, ok := apperror.As(errors.New("plain")); ok {
		t.Error("plain errors should not match")
	}
}

func TestIs(t *testing.T) {
	err1 := apperror.New(apperror.CodeNotFound, apperror.BusinessCodePostNotFound, "post not found", http.StatusNotFound)
	err2 := apperror.New(apperror.CodeNotFound, apperror.BusinessCodePostNotFound, "different message", http.StatusNotFound)
	err3 := apperror.New(apperror.CodeNotFound, apperror.BusinessCodeCategoryNotFound, "category not found", http.StatusNotFound)
	err4 := apperror.New(apperror.CodeConflict, apperror.BusinessCodePostNotFound, "conflict", http.StatusConflict)

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "same codes match", err: err1, target: err2, want: true},
		{name: "different business code doesn't match", err: err1, target: err3, want: false},
		{name: "different error code doesn't match", err: err1, target: err4, want: false},
		{name: "non-AppError doesn't match", err: err1, target: errors.New("regular error"), want: false},
		{name: "wrapped AppError matches", err: fmt.Errorf("ctx: %w", err1), target: err2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	err := apperror.Wrap(
		errors.New("database error"),
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidEmail,
		"email validation failed",
		http.StatusBadRequest,
	).WithDetails(map[string]string{"field": "email"})

	tests := []struct {
		name     string
		format   string
		contains []string
		excludes []string
	}{
		{
			name:     "simple string format",
			format:   "%s",
			contains: []string{"email validation failed"},
			excludes: []string{"Caused by"},
		},
		{
			name:     "simple value format",
			format:   "%v",
			contains: []string{"email validation failed"},
			excludes: []string{"Code:"},
		},
		{
			name:   "verbose format includes all fields",
			format: "%+v",
			contains: []string{
				"Code: VALIDATION_FAILED",
				"BusinessCode: INVALID_EMAIL",
				"Message: email validation failed",
				"HTTPStatus: 400",
				"Caused by: database error",
				"Details: map[field:email]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := fmt.Sprintf(tt.format, err)
			for _, expected := range tt.contains {
				if !strings.Contains(output, expected) {
					t.Errorf("expected output to contain %q, got %q", expected, output)
				}
			}
			for _, unexpected := range tt.excludes {
				if strings.Contains(output, unexpected) {
					t.Errorf("expected output not to contain %q, got %q", unexpected, output)
				}
			}
		})
	}
}

func TestFormat_Bare(t *testing.T) {
	err := apperror.New(apperror.CodeNotFound, apperror.BusinessCodeUserNotFound, "user not found", http.StatusNotFound)

	output := fmt.Sprintf("%+v", err)

	if strings.Contains(output, "Caused by:") {
		t.Errorf("should not contain 'Caused by:' without an inner error, got %q", output)
	}
	if strings.Contains(output, "Details:") {
		t.Errorf("should not contain 'Details:' without details, got %q", output)
	}
}
