package application

import (
	"net/http"

	"github.com/philly/inkwell/internal/platform/apperror"
)

var (
	ErrInvalidUsername = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidUsername,
		"username must be 3-24 characters of letters, digits, '.', '_' or '-'",
		http.StatusBadRequest,
	)
	ErrInvalidProfileData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid profile data",
		http.StatusBadRequest,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeUsernameTaken,
		"username is already taken",
		http.StatusConflict,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeUserNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodePasswordTooShort,
		"password must be at least 8 characters",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidRole,
		"role must be one of user, admin, superadmin",
		http.StatusBadRequest,
	)
	ErrCannotDemoteSelf = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeCannotDemoteSelf,
		"superadmins cannot remove their own superadmin role",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidEmail,
		"invalid email address",
		http.StatusBadRequest,
	)
	ErrProviderRejected = apperror.New(
		apperror.CodeUpstreamFailure,
		apperror.BusinessCodeAuthProviderError,
		"auth provider rejected the request",
		http.StatusBadRequest,
	)
	ErrProviderUnavailable = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeAuthProviderError,
		"auth provider request failed",
		http.StatusInternalServerError,
	)
	ErrInvalidImage = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidImageFile,
		"invalid image file",
		http.StatusBadRequest,
	)
	ErrStorageFailure = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeStorageFailure,
		"failed to store image",
		http.StatusInternalServerError,
	)
	errInternal = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"internal error",
		http.StatusInternalServerError,
	)
)
