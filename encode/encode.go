package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/token"
)

type EncState struct {
	depth, indent int
	compact       bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default is pretty output with 2-space
// indentation; see Indent and Compact. Array elements keep their stored
// order, object keys their insertion order, so output is deterministic
// for a given tree.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, applyValueColor(es, node.Type, "null"))
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return writeString(w, applyValueColor(es, node.Type, v))
	case ir.NumberType:
		v := strconv.FormatFloat(node.Number, 'g', -1, 64)
		return writeString(w, applyValueColor(es, node.Type, v))
	case ir.StringType:
		return writeString(w, applyValueColor(es, node.Type, token.Quote(node.String)))
	case ir.ArrayType:
		return encodeArr(node, w, es)
	case ir.ObjectType:
		return encodeObj(node, w, es)
	default:
		panic("type")
	}
}

func encodeArr(node *ir.Node, w io.Writer, es *EncState) error {
	// empty containers render with no inserted whitespace in any mode
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, node.Type, SepColor, "[]"))
	}
	if err := writeString(w, applyColor(es, node.Type, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, SepColor, "]"))
}

func encodeObj(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, applyColor(es, node.Type, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, node.Type, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, applyColor(es, node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, node.Type, FieldColor, token.Quote(field))); err != nil {
			return err
		}
		sep := ":"
		if !es.compact {
			sep = ": "
		}
		if err := writeString(w, applyColor(es, node.Type, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, SepColor, "}"))
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}
