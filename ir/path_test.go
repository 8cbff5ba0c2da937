package ir

import (
	"errors"
	"testing"
)

func pointerDoc() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "a", Val: FromKeyVals([]KeyVal{
			{Key: "b", Val: FromSlice([]*Node{FromInt(10), FromInt(20)})},
		})},
		{Key: "m/n", Val: FromBool(true)},
		{Key: "t~u", Val: Null()},
		{Key: "0", Val: FromString("member zero")},
		{Key: "", Val: FromString("empty key")},
	})
}

func TestGetPointer(t *testing.T) {
	doc := pointerDoc()
	tests := []struct {
		ptr  string
		want *Node
	}{
		{"", doc},
		{"/a/b/0", FromInt(10)},
		{"/a/b/1", FromInt(20)},
		{"/m~1n", FromBool(true)},
		{"/t~0u", Null()},
		{"/0", FromString("member zero")},
		{"/", FromString("empty key")},
	}
	for _, tt := range tests {
		got, err := doc.GetPointer(tt.ptr)
		if err != nil {
			t.Errorf("GetPointer(%q): %v", tt.ptr, err)
			continue
		}
		if !Equal(got, tt.want) {
			t.Errorf("GetPointer(%q) mismatch", tt.ptr)
		}
	}
}

func TestGetPointerShares(t *testing.T) {
	doc := pointerDoc()
	got, err := doc.GetPointer("/a/b")
	if err != nil {
		t.Fatal(err)
	}
	got.Append(FromInt(30))
	n, err := doc.GetPointer("/a/b/2")
	if err != nil {
		t.Fatal(err)
	}
	if n.Number != 30 {
		t.Errorf("resolved node is not shared with the tree")
	}
}

func TestGetPointerErrs(t *testing.T) {
	doc := pointerDoc()
	tests := []struct {
		ptr string
		e   error
	}{
		{"a/b", ErrInvalidOperation},
		{"/x~2", ErrInvalidOperation},
		{"/x~", ErrInvalidOperation},
		{"/missing", ErrKeyNotFound},
		{"/a/b/7", ErrIndexOutOfRange},
		{"/a/b/-", ErrIndexOutOfRange},
		{"/a/b/01", ErrIndexOutOfRange},
		{"/a/b/0/deeper", ErrTypeMismatch},
	}
	for _, tt := range tests {
		_, err := doc.GetPointer(tt.ptr)
		if !errors.Is(err, tt.e) {
			t.Errorf("GetPointer(%q): got %v, want %v", tt.ptr, err, tt.e)
		}
	}
}

func TestPointerString(t *testing.T) {
	for _, s := range []string{"", "/a/b/0", "/m~1n/t~0u", "/"} {
		p, err := ParsePointer(s)
		if err != nil {
			t.Fatalf("ParsePointer(%q): %v", s, err)
		}
		if got := p.String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}
