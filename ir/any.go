package ir

import (
	"encoding/json"
	"fmt"
)

// ToAny converts a node tree to the equivalent interface{} tree:
// nil, bool, float64, string, []any, map[string]any. Object key order
// is lost; use the node tree itself where order matters.
func ToAny(n *Node) any {
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case NumberType:
		return n.Number
	case StringType:
		return n.String
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, elt := range n.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i, field := range n.Fields {
			res[field] = ToAny(n.Values[i])
		}
		return res
	default:
		panic("impossible production")
	}
}

// FromAny converts an interface{} tree to a node tree. Map keys are
// sorted, as in FromMap. Numeric Go types collapse to float64.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t.Clone(), nil
	case bool:
		return FromBool(t), nil
	case float64:
		return FromFloat(t), nil
	case float32:
		return FromFloat(float64(t)), nil
	case int:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromFloat(float64(t)), nil
	case uint64:
		return FromFloat(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
		}
		return FromFloat(f), nil
	case string:
		return FromString(t), nil
	case []any:
		elems := make([]*Node, len(t))
		for i, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			elems[i] = n
		}
		return FromSlice(elems), nil
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for key, val := range t {
			n, err := FromAny(val)
			if err != nil {
				return nil, err
			}
			m[key] = n
		}
		return FromMap(m), nil
	case map[string]*Node:
		return FromMap(t), nil
	case []*Node:
		return FromSlice(t), nil
	default:
		return nil, fmt.Errorf("%w: cannot represent %T", ErrInvalidOperation, v)
	}
}
