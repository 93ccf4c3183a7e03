package httperror_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/next-trace/scg-http-error/contract"
	"github.com/next-trace/scg-http-error/httperror"
)

func TestFrom_Idempotent(t *testing.T) {
	t.Parallel()

	e := httperror.NewClient("nope", httperror.WithCode("NOPE_WARN"))

	if got := httperror.From(e); got != e {
		t.Fatalf("From(*Error) returned a different pointer")
	}

	// Overrides are ignored once the value already is a library error.
	if got := httperror.From(e, httperror.WithCode("OTHER")); got != e || got.Code() != "NOPE_WARN" {
		t.Fatalf("From must not rewrap or mutate an existing error")
	}

	// Same through a wrap chain.
	wrapped := fmt.Errorf("handler: %w", e)
	if got := httperror.From(wrapped); got != e {
		t.Fatalf("From(wrapped) should surface the inner *Error")
	}

	w := httperror.From("x")
	if got := httperror.From(w); got != w {
		t.Fatalf("From(From(x)) should return the already-wrapped value")
	}
}

func TestFrom_NativeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	e := httperror.From(cause)

	if got, want := e.Code(), httperror.CodeSystem; got != want {
		t.Fatalf("Code=%q want=%q", got, want)
	}

	if got, want := e.Message(), "boom"; got != want {
		t.Fatalf("Message=%q want=%q", got, want)
	}

	if got, want := e.UserMessage(), "boom"; got != want {
		t.Fatalf("UserMessage=%q want=%q", got, want)
	}

	if got, want := e.Status(), http.StatusInternalServerError; got != want {
		t.Fatalf("Status=%d want=%d", got, want)
	}

	if got, want := e.Category(), contract.CategoryError; got != want {
		t.Fatalf("Category=%q want=%q", got, want)
	}

	if !errors.Is(e, cause) {
		t.Fatalf("From must preserve the cause for errors.Is")
	}
}

func TestFrom_ArbitraryValues(t *testing.T) {
	t.Parallel()

	e := httperror.From("plain string")

	if got, want := e.Message(), httperror.UnknownMessage; got != want {
		t.Fatalf("Message=%q want=%q", got, want)
	}

	if got, want := e.Code(), httperror.CodeSystem; got != want {
		t.Fatalf("Code=%q want=%q", got, want)
	}

	if want := map[string]any{"error": "plain string"}; !reflect.DeepEqual(e.Data(), want) {
		t.Fatalf("Data=%v want=%v", e.Data(), want)
	}

	if want := map[string]any{"error": 42}; !reflect.DeepEqual(httperror.From(42).Data(), want) {
		t.Fatalf("Data=%v want=%v", httperror.From(42).Data(), want)
	}
}

func TestFrom_NilYieldsValidRecord(t *testing.T) {
	t.Parallel()

	e := httperror.From(nil)

	if e == nil {
		t.Fatalf("From(nil) must not return nil")
	}

	if e.Code() != httperror.CodeSystem || e.Message() != httperror.UnknownMessage {
		t.Fatalf("From(nil): code=%q message=%q", e.Code(), e.Message())
	}

	if want := map[string]any{"error": nil}; !reflect.DeepEqual(e.Data(), want) {
		t.Fatalf("Data=%v want=%v", e.Data(), want)
	}
}

func TestFrom_OverridesWin(t *testing.T) {
	t.Parallel()

	cause := errors.New("no such table")
	e := httperror.From(cause,
		httperror.WithCode("DATABASE_ERROR"),
		httperror.WithUserMessage("Database error"),
		httperror.WithStatus(http.StatusServiceUnavailable),
	)

	if e.Code() != "DATABASE_ERROR" || e.UserMessage() != "Database error" {
		t.Fatalf("overrides lost: code=%q userMessage=%q", e.Code(), e.UserMessage())
	}

	if got, want := e.Status(), http.StatusServiceUnavailable; got != want {
		t.Fatalf("Status=%d want=%d", got, want)
	}

	if !errors.Is(e, cause) {
		t.Fatalf("cause must survive overrides")
	}
}

func TestFrom_TypedNilErrorPointer(t *testing.T) {
	t.Parallel()

	// A typed-nil error pointer satisfies the error interface but has no
	// usable text; it wraps like any other arbitrary value.
	e := httperror.From((*httperror.Error)(nil))

	if got, want := e.Code(), httperror.CodeSystem; got != want {
		t.Fatalf("Code=%q want=%q", got, want)
	}

	if got, want := e.Message(), httperror.UnknownMessage; got != want {
		t.Fatalf("Message=%q want=%q", got, want)
	}

	if want := map[string]any{"error": (*httperror.Error)(nil)}; !reflect.DeepEqual(e.Data(), want) {
		t.Fatalf("Data=%v want=%v", e.Data(), want)
	}

	if e.Unwrap() != nil {
		t.Fatalf("typed-nil input must not become a cause")
	}

	// The wrapped record serializes and encodes without panicking.
	s := e.Serialize()
	if s.Code != httperror.CodeSystem {
		t.Fatalf("Serialize after typed-nil wrap: %+v", s)
	}

	if _, err := json.Marshal(e); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}

type blankError struct{}

func (blankError) Error() string { return "" }

func TestFrom_EmptyErrorText(t *testing.T) {
	t.Parallel()

	e := httperror.From(blankError{})

	if got, want := e.Message(), httperror.UnknownMessage; got != want {
		t.Fatalf("Message=%q want=%q", got, want)
	}

	if got, want := e.UserMessage(), httperror.UnknownMessage; got != want {
		t.Fatalf("UserMessage=%q want=%q", got, want)
	}
}
