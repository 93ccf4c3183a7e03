package httperror

import (
	"net/http"

	"github.com/next-trace/scg-http-error/contract"
)

// Family status ranges. The two ranges are disjoint, which is what
// guarantees redirection terminates: the status that pushed a construction
// out of one family lands squarely inside the other family's own check (or
// in the unconstrained neutral fallback), so at most one hop ever happens.
const (
	clientStatusMin = http.StatusBadRequest
	clientStatusMax = 499
	serverStatusMin = http.StatusInternalServerError
	serverStatusMax = 599
)

// New constructs a neutral Error, the base representation with no status
// range constraint. Defaults when unspecified: code "ERROR", category
// "error", status 500, user message mirroring the normalized message.
//
// New is also the re-dispatch target for family constructions whose status
// fits neither range, which is why it never validates the status itself.
func New(message any, opts ...Option) *Error {
	e := assemble(FamilyNeutral, message, http.StatusInternalServerError, opts)
	if e.category == "" {
		e.category = contract.CategoryError
	}

	finalize(e, CodeError)

	return e
}

// NewClient constructs a client-family Error: category "warn", status
// defaulting to 400.
//
// The effective status decides the concrete family. A 4xx proceeds as a
// client error; a 5xx re-dispatches the whole construction to NewServer; any
// other status falls back to the neutral New. Callers supplying an
// out-of-range status therefore receive a different family than requested,
// never an invalid record.
func NewClient(message any, opts ...Option) *Error {
	e := assemble(FamilyClient, message, http.StatusBadRequest, opts)

	switch {
	case e.status >= clientStatusMin && e.status <= clientStatusMax:
		e.category = contract.CategoryWarn
		finalize(e, CodeWarn)

		return e
	case e.status >= serverStatusMin && e.status <= serverStatusMax:
		countRedirect(FamilyClient, FamilyServer)
		return NewServer(message, opts...)
	default:
		countRedirect(FamilyClient, FamilyNeutral)
		return New(message, opts...)
	}
}

// NewServer constructs a server-family Error: category "error", status
// defaulting to 500. It mirrors NewClient with the ranges swapped: a 4xx
// status re-dispatches to NewClient and anything outside both ranges falls
// back to the neutral New.
func NewServer(message any, opts ...Option) *Error {
	e := assemble(FamilyServer, message, http.StatusInternalServerError, opts)

	switch {
	case e.status >= serverStatusMin && e.status <= serverStatusMax:
		e.category = contract.CategoryError
		finalize(e, CodeError)

		return e
	case e.status >= clientStatusMin && e.status <= clientStatusMax:
		countRedirect(FamilyServer, FamilyClient)
		return NewClient(message, opts...)
	default:
		countRedirect(FamilyServer, FamilyNeutral)
		return New(message, opts...)
	}
}

// assemble builds the record with the family's default status, applies the
// option bag and captures the construction stack. Range enforcement stays in
// the exported constructors.
func assemble(family Family, message any, defaultStatus int, opts []Option) *Error {
	e := &Error{
		family:  family,
		message: Normalize(message),
		status:  defaultStatus,
		stack:   captureStack(1),
	}

	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}

	if e.message == "" {
		e.message = UnknownMessage
	}

	return e
}

// finalize fills the remaining defaults and records the construction.
func finalize(e *Error, defaultCode string) {
	if e.code == "" {
		e.code = defaultCode
	}

	if e.userMessage == "" {
		e.userMessage = e.message
	}

	countConstructed(e)
}
