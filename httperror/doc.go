// Package httperror provides a production-grade, transport-agnostic taxonomy
// of HTTP-oriented error types for request-handling code.
//
// It exposes a single concrete type Error, tagged by family (neutral, client,
// server), that implements contract.Error and integrates with the standard
// library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Stable, machine-facing Code plus a warn/error Category
//   - Construction-time status enforcement: client-family errors always
//     carry a 4xx status and server-family errors a 5xx one; an out-of-range
//     status re-dispatches construction to the matching family, or to the
//     neutral base type when it fits neither range
//   - Messages normalized to one canonical form (NFC, collapsed whitespace)
//     so identical text compares and logs identically
//   - A client-safe UserMessage kept apart from the internal Message
//   - Structured Data map with defensive cloning on read/write
//   - Optional underlying cause preserved for errors.Is / errors.As
//
// Construction options are available via With* helpers, From adapts arbitrary
// recovered values, and Response/Serialize produce the wire and logging
// shapes. The named subtypes live in the client and server subpackages.
package httperror
