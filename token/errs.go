package token

import "errors"

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrNumber       = errors.New("malformed number")
	ErrIntegerRange = errors.New("integer out of range")
	ErrFloatRange   = errors.New("float out of range")
	ErrRadix        = errors.New("radix out of range")
	ErrNamespace    = errors.New("empty namespace")
)
