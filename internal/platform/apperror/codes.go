package apperror

// ErrorCode is the coarse error category rendered as the "error" field.
type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"
	CodeUpstreamFailure  ErrorCode = "UPSTREAM_FAILURE"
	CodeInternalError    ErrorCode = "INTERNAL_SERVER_ERROR"
)

// BusinessCode names the specific rule that failed.
type BusinessCode string

const (
	BusinessCodeGeneral       BusinessCode = "GENERAL"
	BusinessCodeInvalidFormat BusinessCode = "INVALID_FORMAT"
	BusinessCodeInvalidEmail  BusinessCode = "INVALID_EMAIL"
	BusinessCodeRateLimited   BusinessCode = "RATE_LIMITED"

	// Identity and access
	BusinessCodeAuthenticationRequired BusinessCode = "AUTHENTICATION_REQUIRED"
	BusinessCodeSessionRevoked         BusinessCode = "SESSION_REVOKED"
	BusinessCodePermissionDenied       BusinessCode = "PERMISSION_DENIED"

	// Profiles and admin users
	BusinessCodeUserNotFound      BusinessCode = "USER_NOT_FOUND"
	BusinessCodeInvalidUsername   BusinessCode = "INVALID_USERNAME"
	BusinessCodeUsernameTaken     BusinessCode = "USERNAME_TAKEN"
	BusinessCodePasswordTooShort  BusinessCode = "PASSWORD_TOO_SHORT"
	BusinessCodeCannotDemoteSelf  BusinessCode = "CANNOT_DEMOTE_SELF"
	BusinessCodeInvalidRole       BusinessCode = "INVALID_ROLE"
	BusinessCodeAuthProviderError BusinessCode = "AUTH_PROVIDER_ERROR"

	// Posts
	BusinessCodePostNotFound     BusinessCode = "POST_NOT_FOUND"
	BusinessCodeInvalidPostData  BusinessCode = "INVALID_POST_DATA"
	BusinessCodeStorageFailure   BusinessCode = "STORAGE_FAILURE"
	BusinessCodeInvalidImageFile BusinessCode = "INVALID_IMAGE_FILE"

	// Categories
	BusinessCodeCategoryNotFound       BusinessCode = "CATEGORY_NOT_FOUND"
	BusinessCodeCategoryNameRequired   BusinessCode = "CATEGORY_NAME_REQUIRED"
	BusinessCodeCategoryNameExists     BusinessCode = "CATEGORY_NAME_EXISTS"
	BusinessCodeGeneralCategoryLocked  BusinessCode = "GENERAL_CATEGORY_PROTECTED"
	BusinessCodeGeneralCategoryMissing BusinessCode = "GENERAL_CATEGORY_MISSING"
	BusinessCodeInvalidReassignTarget  BusinessCode = "INVALID_REASSIGN_TARGET"
	BusinessCodeCategoryInUse          BusinessCode = "CATEGORY_IN_USE"

	// Comments
	BusinessCodeCommentEmpty   BusinessCode = "COMMENT_EMPTY"
	BusinessCodeCommentTooLong BusinessCode = "COMMENT_TOO_LONG"
)
