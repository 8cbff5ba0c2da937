package parse

import (
	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// WithPositions records the byte offset at which each parsed node
// starts into m. Useful for tooling that reports on specific nodes of
// a document.
func WithPositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
