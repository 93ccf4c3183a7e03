package httperror

import (
	"reflect"
)

// From converts any value into an *Error.
//
// Behavior:
//   - v is already an *Error, directly or anywhere along an Unwrap chain
//     => returned as-is (same pointer), opts ignored
//   - v is some other error => a neutral Error with code "SYSTEM_ERROR",
//     the error text as message and user message, and v kept as cause for
//     errors.Is / errors.As
//   - anything else, nil and typed-nil error pointers included => a
//     neutral Error with code "SYSTEM_ERROR", the unknown-error message,
//     and v preserved under the "error" data key
//
// opts apply after the conversion defaults, so callers can override the
// code, status or anything else on the wrapping branches. From never fails.
func From(v any, opts ...Option) *Error {
	if e, ok := find(v); ok {
		return e
	}

	if err, ok := v.(error); ok && !isNilPointer(err) {
		base := []Option{
			WithCode(CodeSystem),
			WithUserMessage(Normalize(err)),
			WithCause(err),
		}

		return New(err.Error(), append(base, opts...)...)
	}

	base := []Option{
		WithCode(CodeSystem),
		WithUserMessage(UnknownMessage),
		WithDataKV("error", v),
	}

	return New(nil, append(base, opts...)...)
}

// isNilPointer reports whether err is a typed-nil pointer wrapped in the
// error interface. Calling Error() on one commonly panics, so such values
// take the arbitrary-value branch instead of the error branch.
func isNilPointer(err error) bool {
	rv := reflect.ValueOf(err)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
