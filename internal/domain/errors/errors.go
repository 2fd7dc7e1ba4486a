package errors

import (
	"net/http"

	"locator/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages name the missing piece without ever
// echoing a secret back to the caller.
var (
	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrNotSiteOwner = NewBaseError(
		http.StatusNotFound,
		"SITE_NOT_OWNED",
		"Site not found or access denied",
		"",
	)

	// Tenant configuration errors. The embedding UI keys actionable copy off
	// the error code, so "never onboarded" and "map key missing" stay distinct.
	ErrSiteNotConfigured = NewBaseError(
		http.StatusNotFound,
		"SITE_NOT_CONFIGURED",
		"Site not configured",
		"",
	)

	ErrMapKeyNotConfigured = NewBaseError(
		http.StatusNotFound,
		"MAP_KEY_NOT_CONFIGURED",
		"Map provider key not configured for this site",
		"",
	)

	ErrCollectionNotBound = NewBaseError(
		http.StatusBadRequest,
		"COLLECTION_NOT_BOUND",
		"No collection bound to this token",
		"",
	)

	// Request errors
	ErrBadStyleFormat = NewBaseError(
		http.StatusBadRequest,
		"BAD_STYLE_FORMAT",
		"Invalid map style format. Use 'username/style_id' or a full style URL",
		"",
	)

	ErrInvalidTileCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TILE_COORDINATES",
		"Tile coordinates must be non-negative integers",
		"",
	)

	ErrAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REQUIRED",
		"Address query parameter is required",
		"",
	)

	// Upstream errors
	ErrUpstreamFailure = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILURE",
		"Upstream provider request failed",
		"",
	)

	ErrOAuthExchangeFailed = NewBaseError(
		http.StatusInternalServerError,
		"OAUTH_EXCHANGE_FAILED",
		"Failed to complete authorization with the CMS provider",
		"",
	)

	// Persistence errors
	ErrTenantWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"TENANT_WRITE_FAILED",
		"Failed to save site configuration",
		"",
	)
)

// NewUpstreamError maps an upstream HTTP status onto an AppError, keeping the
// original status where it is meaningful to the widget (4xx pass-through).
func NewUpstreamError(api string, status int) *BaseError {
	code := http.StatusBadGateway
	if status >= 400 && status < 500 {
		code = status
	}

	return NewBaseError(code, "UPSTREAM_FAILURE", "Upstream provider request failed", api)
}
