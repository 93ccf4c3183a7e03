// Package contract exposes the minimal error surface and the wire shapes
// used by other packages.
//
// Implementations must ensure Data returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Category groups error types by the HTTP status range they map to: "warn"
// marks client-caused failures (4xx) and "error" marks server-caused
// failures (5xx). The split drives response shaping and log severity alike.
type Category string

const (
	// CategoryWarn marks client-caused failures carrying 4xx statuses.
	CategoryWarn Category = "warn"

	// CategoryError marks server-caused failures carrying 5xx statuses.
	CategoryError Category = "error"
)

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Keep every field immutable after construction.
//   - Ensure Data() returns a defensive copy (never the internal map).
//   - Support errors.Unwrap via Unwrap().
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal and transport-agnostic.
type Error interface {
	error
	Code() string
	Category() Category
	Status() int
	Message() string
	UserMessage() string
	// Data returns a defensive copy; NEVER return the internal map directly.
	Data() map[string]any
	Unwrap() error
}
