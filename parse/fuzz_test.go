package parse

import (
	"testing"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`null`,
		`true`,
		`-0.5e3`,
		`"a\nbé"`,
		`[1,[2,[]],null]`,
		`{"a":{"b":[true,false]},"c":""}`,
		`{"a":1,"a":2}`,
		`007`,
		`[1,2,]`,
		`"\uD800"`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		node, err := Parse(d)
		if err != nil {
			return
		}
		// anything we accept must survive a dump/reparse cycle
		out := encode.String(node)
		again, err := Parse([]byte(out))
		if err != nil {
			t.Fatalf("reparse of %q (from %q): %v", out, d, err)
		}
		if !ir.Equal(node, again) {
			t.Fatalf("round trip of %q changed the tree", d)
		}
	})
}
