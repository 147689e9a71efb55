package request

import (
	"fmt"
	"strings"
)

const (
	msgFirstParameter  = "The first parameter should be a natural number or zero."
	msgSecondParameter = "The second parameter should be a natural number."
	msgNoNumbers       = "There are no numbers with these properties."
)

// UserError is implemented by every error caused by malformed input. The
// text of such an error is meant to be shown to the user as is.
type UserError interface {
	error
	userError()
}

// ParamError reports a positional parameter that is not an acceptable number.
type ParamError struct {
	Position int // 1 for the start number, 2 for the count
	Token    string
}

func (e *ParamError) Error() string {
	if e.Position == 1 {
		return msgFirstParameter
	}
	return msgSecondParameter
}

func (e *ParamError) userError() {}

// PropertyError lists every property token that names nothing in the catalog.
type PropertyError struct {
	Invalid   []string // original token text, in input order
	Available []string
}

func (e *PropertyError) Error() string {
	var b strings.Builder
	if len(e.Invalid) == 1 {
		fmt.Fprintf(&b, "The property [%s] is wrong.", e.Invalid[0])
	} else {
		fmt.Fprintf(&b, "The properties [%s] are wrong.", strings.Join(e.Invalid, ", "))
	}
	fmt.Fprintf(&b, "\nAvailable properties: [%s]", strings.Join(e.Available, ", "))
	return b.String()
}

func (e *PropertyError) userError() {}

// ConflictError reports the first pair of filters no number can satisfy.
type ConflictError struct {
	Tokens [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("The request contains mutually exclusive properties: [%s, %s]\n%s",
		e.Tokens[0], e.Tokens[1], msgNoNumbers)
}

func (e *ConflictError) userError() {}
