package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Pointer is a parsed RFC 6901 JSON Pointer, one Ref per reference
// token. The empty pointer refers to the document root.
type Pointer []Ref

// Ref is one reference token. Index is valid only when IsIndex is
// true; Field holds the unescaped token either way, so a Ref like "0"
// can still select an object member.
type Ref struct {
	Field   string
	Index   int
	IsIndex bool
}

// ParsePointer parses an RFC 6901 pointer such as "/a/b/0". The empty
// string is the root pointer; any other pointer must start with '/'.
// "~1" unescapes to '/' and "~0" to '~'.
func ParsePointer(p string) (Pointer, error) {
	if p == "" {
		return nil, nil
	}
	if p[0] != '/' {
		return nil, fmt.Errorf("%w: pointer %q must start with '/'", ErrInvalidOperation, p)
	}
	toks := strings.Split(p[1:], "/")
	res := make(Pointer, 0, len(toks))
	for _, tok := range toks {
		f, err := unescapeRef(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: pointer %q: %v", ErrInvalidOperation, p, err)
		}
		ref := Ref{Field: f}
		// "-" addresses one past the end on append-style patches; plain
		// resolution treats it as out of range below
		if i, err := strconv.ParseUint(f, 10, 31); err == nil && noLeadingZero(f) {
			ref.Index = int(i)
			ref.IsIndex = true
		}
		res = append(res, ref)
	}
	return res, nil
}

func unescapeRef(tok string) (string, error) {
	if !strings.ContainsRune(tok, '~') {
		return tok, nil
	}
	b := &strings.Builder{}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(tok) {
			return "", fmt.Errorf("dangling '~'")
		}
		i++
		switch tok[i] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("bad escape %q", tok[i-1:i+1])
		}
	}
	return b.String(), nil
}

func noLeadingZero(f string) bool {
	return len(f) == 1 || f[0] != '0'
}

func (p Pointer) String() string {
	b := &strings.Builder{}
	for _, ref := range p {
		b.WriteByte('/')
		f := strings.Replace(ref.Field, "~", "~0", -1)
		b.WriteString(strings.Replace(f, "/", "~1", -1))
	}
	return b.String()
}

// Resolve walks the pointer from y and returns the addressed node. The
// selected node is shared with the tree, not a copy. Resolution fails
// with ErrKeyNotFound, ErrIndexOutOfRange or ErrTypeMismatch depending
// on where the walk breaks down.
func (p Pointer) Resolve(y *Node) (*Node, error) {
	res := y
	for i, ref := range p {
		switch res.Type {
		case ObjectType:
			v, err := res.Get(ref.Field)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", p[:i+1], err)
			}
			res = v
		case ArrayType:
			if !ref.IsIndex {
				return nil, fmt.Errorf("at %s: %w: %q is not an array index",
					p[:i+1], ErrIndexOutOfRange, ref.Field)
			}
			v, err := res.Index(ref.Index)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", p[:i+1], err)
			}
			res = v
		default:
			return nil, fmt.Errorf("at %s: %w: cannot descend into %s",
				p[:i+1], ErrTypeMismatch, res.Type)
		}
	}
	return res, nil
}

// GetPointer resolves an RFC 6901 pointer string against y.
func (y *Node) GetPointer(p string) (*Node, error) {
	ptr, err := ParsePointer(p)
	if err != nil {
		return nil, err
	}
	return ptr.Resolve(y)
}
