package encode

import (
	"bytes"

	"github.com/signadot/jsontree/ir"
)

// Dump renders node as JSON text: indent < 0 selects compact output,
// indent >= 0 pretty output with that many spaces per nesting level.
func Dump(node *ir.Node, indent int) string {
	return MustString(node, Indent(indent))
}

// String renders node as compact JSON text.
func String(node *ir.Node) string {
	return MustString(node, Compact())
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
