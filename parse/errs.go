package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/go-edn/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrOddMap   = fmt.Errorf("%w: map with odd number of elements", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing input", ErrParse)
	ErrDepth    = fmt.Errorf("%w: nesting too deep", ErrParse)
)

// ParseError describes a failed parse: what went wrong, where, and, when
// no grammar alternative matched, which alternatives were attempted at the
// furthest offset reached.
type ParseError struct {
	Err      error
	Offset   int
	Pos      *token.Pos
	Expected []string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
	if len(e.Expected) == 0 {
		return msg
	}
	return msg + " (expected " + strings.Join(e.Expected, ", ") + ")"
}
