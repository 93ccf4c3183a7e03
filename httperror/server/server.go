// Package server provides the named 5xx subtypes: constructors that fix a
// code, a status and a default message on top of httperror.NewServer. Every
// override still forwards, so a subtype constructed with an out-of-range
// status redirects exactly like a plain server-family construction.
package server

import (
	"net/http"

	"github.com/next-trace/scg-http-error/httperror"
)

// Codes fixed by the constructors in this package. CodeInternalServer is the
// same code From stamps on wrapped unknown values.
const (
	CodeInternalServer = httperror.CodeSystem
	CodeDatabase       = "DATABASE_ERROR"
	CodeMail           = "MAIL_ERROR"
	CodeEncrypt        = "ENCRYPT_ERROR"
	CodeConfig         = "CONFIG_ERROR"
	CodeIntegration    = "INTEGRATION_ERROR"
	CodeTimeout        = "TIMEOUT_ERROR"
	CodeStorage        = "STORAGE_ERROR"
	CodeNetwork        = "NETWORK_ERROR"
	CodeLog            = "LOG_ERROR"
	CodeMemory         = "MEMORY_ERROR"
	CodeAuth           = "AUTH_ERROR"
)

// construct prepends the subtype's fixed code and status so caller options
// applied later still win.
func construct(code string, status int, message string, opts []httperror.Option) *httperror.Error {
	fixed := []httperror.Option{
		httperror.WithCode(code),
		httperror.WithStatus(status),
	}

	return httperror.NewServer(message, append(fixed, opts...)...)
}

// InternalServer reports an unspecified failure inside the service.
func InternalServer(opts ...httperror.Option) *httperror.Error {
	return construct(CodeInternalServer, http.StatusInternalServerError, "Internal server error", opts)
}

// Database reports a failed database operation.
func Database(opts ...httperror.Option) *httperror.Error {
	return construct(CodeDatabase, http.StatusInternalServerError, "Database error", opts)
}

// Mail reports a failure while sending email through an upstream relay.
func Mail(opts ...httperror.Option) *httperror.Error {
	return construct(CodeMail, http.StatusBadGateway, "Error sending email", opts)
}

// Encrypt reports a failed encryption or decryption operation.
func Encrypt(opts ...httperror.Option) *httperror.Error {
	return construct(CodeEncrypt, http.StatusInternalServerError, "Encryption error", opts)
}

// Config reports configuration that could not be loaded or parsed.
func Config(opts ...httperror.Option) *httperror.Error {
	return construct(CodeConfig, http.StatusInternalServerError, "Configuration load error", opts)
}

// Integration reports a failed call to an external service.
func Integration(opts ...httperror.Option) *httperror.Error {
	return construct(CodeIntegration, http.StatusBadGateway, "External service integration error", opts)
}

// Timeout reports an operation that exceeded its deadline.
func Timeout(opts ...httperror.Option) *httperror.Error {
	return construct(CodeTimeout, http.StatusGatewayTimeout, "Timeout exceeded", opts)
}

// Storage reports exhausted or failing storage.
func Storage(opts ...httperror.Option) *httperror.Error {
	return construct(CodeStorage, http.StatusInsufficientStorage, "Storage error", opts)
}

// Network reports a network-level failure.
func Network(opts ...httperror.Option) *httperror.Error {
	return construct(CodeNetwork, http.StatusServiceUnavailable, "Network error", opts)
}

// Log reports a failure in the logging pipeline itself.
func Log(opts ...httperror.Option) *httperror.Error {
	return construct(CodeLog, http.StatusInternalServerError, "Logging error", opts)
}

// Memory reports memory exhaustion.
func Memory(opts ...httperror.Option) *httperror.Error {
	return construct(CodeMemory, http.StatusInsufficientStorage, "Memory error", opts)
}

// Auth reports a failure inside the authentication machinery, as opposed to
// client.Auth which reports credentials the caller got wrong.
func Auth(opts ...httperror.Option) *httperror.Error {
	return construct(CodeAuth, http.StatusInternalServerError, "Authentication/token validation error", opts)
}
