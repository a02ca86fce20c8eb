package parse

import "github.com/signadot/go-edn/debug"

const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
	trace    bool
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{
		maxDepth: DefaultMaxDepth,
		trace:    debug.Parse(),
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

type ParseOption func(*parseOpts)

// MaxDepth bounds the nesting of collections. Deeper input fails with
// [ErrDepth].
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseTrace logs every grammar alternative tried to stderr. It defaults to
// the value of EDN_DEBUG_PARSE.
func ParseTrace(v bool) ParseOption {
	return func(o *parseOpts) { o.trace = v }
}
