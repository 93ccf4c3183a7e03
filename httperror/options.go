package httperror

import (
	"github.com/next-trace/scg-http-error/contract"
)

// Option configures an Error during construction. Options apply in order, so
// a later option overrides an earlier one; family constructors enforce their
// category and status range after the whole bag has been applied.
type Option func(*Error)

// Default identifier codes. These are compile-time constants, not
// configuration; the <NAME>_ERROR / <NAME>_WARN convention is recommended
// but any code string is accepted for backward compatibility.
const (
	// CodeError is the default code of neutral and server-family errors.
	CodeError = "ERROR"

	// CodeWarn is the default code of client-family errors.
	CodeWarn = "WARN"

	// CodeSystem marks errors adapted from unknown values by From.
	CodeSystem = "SYSTEM_ERROR"
)

// WithCode sets the machine-facing code for the error.
func WithCode(code string) Option { return func(e *Error) { e.code = code } }

// WithCategory sets the category for the error. Family constructors override
// it on their valid path; it only sticks on the neutral base type.
func WithCategory(category contract.Category) Option {
	return func(e *Error) { e.category = category }
}

// WithStatus sets the HTTP status for the error. A status outside the
// constructing family's range re-dispatches the construction, so the
// returned error may belong to a different family than requested.
func WithStatus(status int) Option { return func(e *Error) { e.status = status } }

// WithMessage replaces the internal message. The value goes through
// Normalize exactly like a message passed positionally.
func WithMessage(v any) Option { return func(e *Error) { e.message = Normalize(v) } }

// WithUserMessage sets the client-safe text. When unset it defaults to the
// normalized message.
func WithUserMessage(msg string) Option { return func(e *Error) { e.userMessage = msg } }

// WithData sets the contextual data map for the error. The provided map is
// defensively cloned and replaces any previously attached data.
func WithData(data map[string]any) Option {
	return func(e *Error) { e.data = cloneMap(data) }
}

// WithDataKV sets a single key/value in the error data map. The internal map
// is created on first use.
func WithDataKV(k string, v any) Option {
	return func(e *Error) {
		if e.data == nil {
			e.data = map[string]any{}
		}

		e.data[k] = v
	}
}

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }
