package httperror

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UnknownMessage is the placeholder used when no usable message exists.
const UnknownMessage = "Unknown error"

// Normalize converts an arbitrary value to a canonical display string.
//
// nil maps to UnknownMessage. Strings are taken as-is; errors, Stringers and
// everything else reduce through fmt.Sprint, which never fails. The result
// is trimmed, internal whitespace runs collapse to single spaces, and the
// text is normalized to Unicode NFC so visually identical strings compare
// and log identically regardless of input encoding.
func Normalize(v any) string {
	if v == nil {
		return UnknownMessage
	}

	s, ok := v.(string)
	if !ok {
		// fmt.Sprint resolves error and fmt.Stringer implementations and
		// recovers panics raised inside them.
		s = fmt.Sprint(v)
	}

	// strings.Fields both trims and collapses any unicode whitespace run.
	s = strings.Join(strings.Fields(s), " ")

	return norm.NFC.String(s)
}
