// Package client provides the named 4xx subtypes: constructors that fix a
// code, a status and a default message on top of httperror.NewClient. Every
// override still forwards, so a subtype constructed with an out-of-range
// status redirects exactly like a plain client-family construction.
package client

import (
	"net/http"

	"github.com/next-trace/scg-http-error/httperror"
)

// Codes fixed by the constructors in this package.
const (
	CodeBadRequest      = "BAD_REQUEST_WARN"
	CodeUnauthorized    = "UNAUTHORIZED_WARN"
	CodeForbidden       = "FORBIDDEN_WARN"
	CodeNotFound        = "NOT_FOUND_WARN"
	CodeConflict        = "CONFLICT_WARN"
	CodeValidation      = "VALIDATION_WARN"
	CodeTooManyRequests = "TOO_MANY_REQUESTS_WARN"
	CodeUnknownRoute    = "ROUTE_WARN"
	CodeAuth            = "AUTH_WARN"
)

// construct prepends the subtype's fixed code and status so caller options
// applied later still win.
func construct(code string, status int, message string, opts []httperror.Option) *httperror.Error {
	fixed := []httperror.Option{
		httperror.WithCode(code),
		httperror.WithStatus(status),
	}

	return httperror.NewClient(message, append(fixed, opts...)...)
}

// BadRequest reports a malformed or otherwise invalid request.
func BadRequest(opts ...httperror.Option) *httperror.Error {
	return construct(CodeBadRequest, http.StatusBadRequest, "Invalid request", opts)
}

// Unauthorized reports a request lacking valid credentials.
func Unauthorized(opts ...httperror.Option) *httperror.Error {
	return construct(CodeUnauthorized, http.StatusUnauthorized, "Not authorized", opts)
}

// Forbidden reports a request the caller is not allowed to make.
func Forbidden(opts ...httperror.Option) *httperror.Error {
	return construct(CodeForbidden, http.StatusForbidden, "Access denied", opts)
}

// NotFound reports a request for a resource that does not exist.
func NotFound(opts ...httperror.Option) *httperror.Error {
	return construct(CodeNotFound, http.StatusNotFound, "Resource not found", opts)
}

// Conflict reports a request that clashes with current resource state.
func Conflict(opts ...httperror.Option) *httperror.Error {
	return construct(CodeConflict, http.StatusConflict, "State conflict", opts)
}

// Validation reports input that failed semantic validation.
func Validation(opts ...httperror.Option) *httperror.Error {
	return construct(CodeValidation, http.StatusUnprocessableEntity, "Validation failure", opts)
}

// TooManyRequests reports a caller exceeding its rate limit.
func TooManyRequests(opts ...httperror.Option) *httperror.Error {
	return construct(CodeTooManyRequests, http.StatusTooManyRequests, "Too many requests", opts)
}

// UnknownRoute reports a request that matched no registered route. It shares
// the 404 status with NotFound but keeps its own code so routing gaps stay
// distinguishable from missing resources.
func UnknownRoute(opts ...httperror.Option) *httperror.Error {
	return construct(CodeUnknownRoute, http.StatusNotFound, "Route not found", opts)
}

// Auth reports a failed authentication or token validation.
func Auth(opts ...httperror.Option) *httperror.Error {
	return construct(CodeAuth, http.StatusUnauthorized, "Authentication/token validation error", opts)
}
