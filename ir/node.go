package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Node is a single JSON value. Exactly one kind, indicated by Type, is
// active; the corresponding field holds the value. Object keys live in
// Fields, parallel to Values, in insertion order. Arrays use Values only.
type Node struct {
	Type Type

	Bool   bool
	Number float64
	String string

	Fields []string
	Values []*Node
}

// Type predicates. These are pure and cannot fail.

func (n *Node) IsNull() bool   { return n.Type == NullType }
func (n *Node) IsBool() bool   { return n.Type == BoolType }
func (n *Node) IsNumber() bool { return n.Type == NumberType }
func (n *Node) IsString() bool { return n.Type == StringType }
func (n *Node) IsArray() bool  { return n.Type == ArrayType }
func (n *Node) IsObject() bool { return n.Type == ObjectType }

func (n *Node) AsBool() (bool, error) {
	if n.Type != BoolType {
		return false, fmt.Errorf("%w: AsBool on %s", ErrTypeMismatch, n.Type)
	}
	return n.Bool, nil
}

func (n *Node) AsNumber() (float64, error) {
	if n.Type != NumberType {
		return 0, fmt.Errorf("%w: AsNumber on %s", ErrTypeMismatch, n.Type)
	}
	return n.Number, nil
}

func (n *Node) AsString() (string, error) {
	if n.Type != StringType {
		return "", fmt.Errorf("%w: AsString on %s", ErrTypeMismatch, n.Type)
	}
	return n.String, nil
}

// AsArray returns the element slice of an array node. The elements are
// shared with the node, so assigning through the returned slice mutates
// the tree in place.
func (n *Node) AsArray() ([]*Node, error) {
	if n.Type != ArrayType {
		return nil, fmt.Errorf("%w: AsArray on %s", ErrTypeMismatch, n.Type)
	}
	return n.Values, nil
}

// AsObject returns a key lookup view of an object node. The values are
// shared with the node; adding or removing map entries does not change
// the node, use At or SetField for that.
func (n *Node) AsObject() (map[string]*Node, error) {
	if n.Type != ObjectType {
		return nil, fmt.Errorf("%w: AsObject on %s", ErrTypeMismatch, n.Type)
	}
	res := make(map[string]*Node, len(n.Fields))
	for i, field := range n.Fields {
		res[field] = n.Values[i]
	}
	return res, nil
}

// Index returns the i'th element of an array node. It never extends the
// array.
func (n *Node) Index(i int) (*Node, error) {
	if n.Type != ArrayType {
		return nil, fmt.Errorf("%w: Index on %s", ErrTypeMismatch, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(n.Values))
	}
	return n.Values[i], nil
}

// SetIndex replaces the i'th element of an array node, bounds-checked
// like Index.
func (n *Node) SetIndex(i int, v *Node) error {
	if n.Type != ArrayType {
		return fmt.Errorf("%w: SetIndex on %s", ErrTypeMismatch, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(n.Values))
	}
	n.Values[i] = v
	return nil
}

// Append adds an element at the end of an array node.
func (n *Node) Append(v *Node) error {
	if n.Type != ArrayType {
		return fmt.Errorf("%w: Append on %s", ErrTypeMismatch, n.Type)
	}
	n.Values = append(n.Values, v)
	return nil
}

// Get returns the value under key in an object node. It never inserts;
// an absent key is ErrKeyNotFound.
func (n *Node) Get(key string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, fmt.Errorf("%w: Get on %s", ErrTypeMismatch, n.Type)
	}
	for i, field := range n.Fields {
		if field == key {
			return n.Values[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// At returns the value under key in an object node, inserting a null
// entry for an absent key. The insertion is what lets a caller create
// and set a key in one step; read-only access should use Get.
func (n *Node) At(key string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, fmt.Errorf("%w: At on %s", ErrTypeMismatch, n.Type)
	}
	for i, field := range n.Fields {
		if field == key {
			return n.Values[i], nil
		}
	}
	v := Null()
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, v)
	return v, nil
}

// SetField sets key to v in an object node, overwriting an existing
// entry in place so the key keeps its original position.
func (n *Node) SetField(key string, v *Node) error {
	if n.Type != ObjectType {
		return fmt.Errorf("%w: SetField on %s", ErrTypeMismatch, n.Type)
	}
	for i, field := range n.Fields {
		if field == key {
			n.Values[i] = v
			return nil
		}
	}
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, v)
	return nil
}

// Len returns the element count of an array or the key count of an
// object.
func (n *Node) Len() (int, error) {
	switch n.Type {
	case ArrayType:
		return len(n.Values), nil
	case ObjectType:
		return len(n.Fields), nil
	default:
		return 0, fmt.Errorf("%w: Len on %s", ErrInvalidOperation, n.Type)
	}
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n into dst and returns dst. Array and object
// children are copied recursively; the clone shares nothing with n.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Bool = n.Bool
	dst.Number = n.Number
	dst.String = n.String
	dst.Fields = slices.Clone(n.Fields)
	dst.Values = nil
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromInt builds a number node. The value collapses to float64; very
// large integers lose precision.
func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: float64(v),
	}
}

func FromFloat(v float64) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(elems []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(elems))
	copy(res.Values, elems)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node keeping the given key order. A key
// occurring more than once keeps its first position with the last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		res.SetField(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FromMap builds an object node with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// Visit walks the tree rooted at n, calling f once before descending
// into children (isPost false) and once after (isPost true). Returning
// dive=false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
