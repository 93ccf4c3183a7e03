package httperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/next-trace/scg-http-error/contract"
)

// Family tags an Error with the status range it was constructed under.
// Client and server are mutually exclusive ranges; neutral is the fallback
// with no range constraint at all.
type Family int

const (
	// FamilyNeutral accepts any status. It is the re-dispatch target for
	// statuses that fit neither the client nor the server range.
	FamilyNeutral Family = iota

	// FamilyClient carries 4xx statuses only (category "warn").
	FamilyClient

	// FamilyServer carries 5xx statuses only (category "error").
	FamilyServer
)

// String returns the lowercase family tag, suitable for labels.
func (f Family) String() string {
	switch f {
	case FamilyClient:
		return "client"
	case FamilyServer:
		return "server"
	default:
		return "neutral"
	}
}

// displayName is the identity used by Error() strings and Serialize().
func (f Family) displayName() string {
	switch f {
	case FamilyClient:
		return "ClientError"
	case FamilyServer:
		return "ServerError"
	default:
		return "HTTPError"
	}
}

// Error is the canonical error type for SCG services speaking HTTP.
//
// Fields:
//   - Code:        stable, machine-facing code (e.g. "NOT_FOUND_WARN")
//   - Category:    warn (client-caused, 4xx) or error (server-caused, 5xx)
//   - Status:      numeric HTTP status (transport-agnostic until encoded)
//   - Message:     normalized internal detail, intended for logs
//   - UserMessage: the only text safe to surface to an end user
//   - Data:        everything else (ids, validation issues, hints, etc.)
//
// Instances are immutable after construction; Data is defensively cloned on
// both write and read.
type Error struct {
	family      Family
	code        string
	category    contract.Category
	status      int
	message     string
	userMessage string
	data        map[string]any
	cause       error
	stack       []string
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	// Compact, dev-friendly string. Clients should read fields/encode via adapters.
	return fmt.Sprintf("%s [%s]: %s", e.family.displayName(), e.code, e.message)
}

// Unwrap tolerates a nil receiver: errors.Is and errors.As call it on
// every node of a chain, typed-nil ones included.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// ------ contract.Error getters

func (e *Error) Code() string                { return e.code }
func (e *Error) Category() contract.Category { return e.category }
func (e *Error) Status() int                 { return e.status }
func (e *Error) Message() string             { return e.message }
func (e *Error) UserMessage() string         { return e.userMessage }
func (e *Error) Data() map[string]any        { return cloneMap(e.data) }

// ------ identity

// Family returns the family tag the error was constructed under.
func (e *Error) Family() Family { return e.family }

// Name returns the display identity ("HTTPError", "ClientError" or
// "ServerError") used in Error() strings and serialized output.
func (e *Error) Name() string { return e.family.displayName() }

// Stack returns a copy of the call stack captured at construction.
func (e *Error) Stack() []string {
	if len(e.stack) == 0 {
		return nil
	}

	return append([]string(nil), e.stack...)
}

// Is reports whether v is a library Error or an error whose chain contains
// one. It is the membership check response and logging layers narrow with;
// within a single binary, chain membership is the only identity that
// matters.
func Is(v any) bool {
	_, ok := find(v)
	return ok
}

// Code returns the code carried by v when Is(v) holds, and "" otherwise.
func Code(v any) string {
	e, ok := find(v)
	if !ok {
		return ""
	}

	return e.code
}

// find locates a non-nil *Error in v, directly or through an error chain.
func find(v any) (*Error, bool) {
	switch t := v.(type) {
	case *Error:
		return t, t != nil
	case error:
		// errors.As matches typed-nil chain nodes too; only a non-nil
		// record counts as membership.
		var e *Error
		if errors.As(t, &e) && e != nil {
			return e, true
		}
	}

	return nil, false
}

// ------ wire and logging shapes

// Response shapes the error for transmission: the HTTP status paired with
// the client-safe body. Message falls back to the internal message only when
// no user message was ever derived; Data stays nil (JSON null) when empty.
func (e *Error) Response() contract.Response {
	msg := e.userMessage
	if msg == "" {
		msg = e.message
	}

	return contract.Response{
		Status: e.status,
		Body: contract.ResponseBody{
			Code:     e.code,
			Category: e.category,
			Message:  msg,
			Data:     cloneMap(e.data),
		},
	}
}

// Serialize returns the structured-logging shape of the error, including the
// internal message, the construction stack and a one-level serialization of
// the cause. Never surface its output to clients; use Response for that.
func (e *Error) Serialize() contract.Serialized {
	s := contract.Serialized{
		Name:        e.family.displayName(),
		Code:        e.code,
		Category:    e.category,
		Status:      e.status,
		Message:     e.message,
		UserMessage: e.userMessage,
		Data:        cloneMap(e.data),
		Stack:       e.Stack(),
	}
	if e.cause != nil {
		s.Cause = serializeCause(e.cause)
	}

	return s
}

func serializeCause(cause error) *contract.SerializedCause {
	// errors.As matches a typed-nil *Error too; such a cause has no fields
	// to serialize and falls through to the foreign branch, where the
	// nil-safe Error() renders it.
	var ce *Error
	if errors.As(cause, &ce) && ce != nil {
		return &contract.SerializedCause{
			Name:    ce.family.displayName(),
			Message: ce.message,
			Code:    ce.code,
			Stack:   ce.Stack(),
		}
	}

	return &contract.SerializedCause{
		Name:    fmt.Sprintf("%T", cause),
		Message: cause.Error(),
	}
}

// MarshalJSON emits the Serialize shape, so json.Marshal(err) and structured
// log encoders agree on the representation.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Serialize())
}

// LogValue implements slog.LogValuer: structured loggers expand the error
// into its fields instead of flattening it to a message string. The stack is
// left out on purpose; Serialize carries it for sinks that want it.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}

	attrs := []slog.Attr{
		slog.String("name", e.family.displayName()),
		slog.String("code", e.code),
		slog.String("category", string(e.category)),
		slog.Int("status", e.status),
		slog.String("message", e.message),
		slog.String("userMessage", e.userMessage),
	}
	if len(e.data) > 0 {
		attrs = append(attrs, slog.Any("data", cloneMap(e.data)))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		// Deep-clone nested maps with string keys to avoid leaking internal references.
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
