package encode

import (
	"fmt"
	"strings"
	"testing"

	"github.com/signadot/jsontree/ir"
)

func sampleDoc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("ada")},
		{Key: "age", Val: ir.FromInt(36)},
		{Key: "tags", Val: ir.FromSlice([]*ir.Node{
			ir.FromString("a"), ir.FromString("b")})},
		{Key: "meta", Val: ir.FromKeyVals(nil)},
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.Null(), `null`},
		{ir.FromBool(true), `true`},
		{ir.FromBool(false), `false`},
		{ir.FromInt(42), `42`},
		{ir.FromInt(-17), `-17`},
		{ir.FromFloat(0.5), `0.5`},
		{ir.FromFloat(3.14), `3.14`},
		{ir.FromString(""), `""`},
		{ir.FromString("hi"), `"hi"`},
		{ir.FromString("a\nb"), `"a\nb"`},
		{ir.FromString(`q"\`), `"q\"\\"`},
		{ir.FromSlice(nil), `[]`},
		{ir.FromKeyVals(nil), `{}`},
		{ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()}), `[1,null]`},
		{ir.FromKeyVals([]ir.KeyVal{
			{Key: "b", Val: ir.FromInt(2)},
			{Key: "a", Val: ir.FromInt(1)},
		}), `{"b":2,"a":1}`},
	}
	for _, tt := range tests {
		if got := String(tt.node); got != tt.want {
			t.Errorf("String: got %s, want %s", got, tt.want)
		}
	}
}

func TestDumpPretty(t *testing.T) {
	doc := sampleDoc()
	want := `{
  "name": "ada",
  "age": 36,
  "tags": [
    "a",
    "b"
  ],
  "meta": {}
}`
	if got := Dump(doc, 2); got != want {
		t.Errorf("Dump(doc, 2):\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpIndentWidths(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	tests := []struct {
		indent int
		want   string
	}{
		{-1, `[1]`},
		{0, "[\n1\n]"},
		{1, "[\n 1\n]"},
		{4, "[\n    1\n]"},
	}
	for _, tt := range tests {
		if got := Dump(doc, tt.indent); got != tt.want {
			t.Errorf("Dump(doc, %d) = %q, want %q", tt.indent, got, tt.want)
		}
	}
}

func TestCompactEqualsNegativeIndent(t *testing.T) {
	doc := sampleDoc()
	if a, b := MustString(doc, Compact()), Dump(doc, -1); a != b {
		t.Errorf("Compact() %s != Indent(-1) %s", a, b)
	}
	want := `{"name":"ada","age":36,"tags":["a","b"],"meta":{}}`
	if got := String(doc); got != want {
		t.Errorf("String(doc) = %s, want %s", got, want)
	}
}

func TestDepth(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
	want := "[\n    1,\n    2\n  ]"
	if got := MustString(doc, Indent(2), Depth(1)); got != want {
		t.Errorf("Depth(1): %q, want %q", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	// a tagging color func makes the attribute routing visible without
	// depending on terminal escapes
	es := func(typ ir.Type, attr ColorAttr, v string) string {
		switch attr {
		case FieldColor:
			return fmt.Sprintf("<f>%s</f>", v)
		case ValueColor:
			return fmt.Sprintf("<v>%s</v>", v)
		default:
			return v
		}
	}
	doc := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	buf := &strings.Builder{}
	err := Encode(doc, buf, Compact(), func(s *EncState) { s.Color = es })
	if err != nil {
		t.Fatal(err)
	}
	want := `{<f>"a"</f>:<v>1</v>}`
	if got := buf.String(); got != want {
		t.Errorf("colored output %s, want %s", got, want)
	}
}

func TestNewColorsTerminalOutput(t *testing.T) {
	// with real colors enabled the output must still contain the plain
	// rendering as a subsequence stripped of escapes
	doc := sampleDoc()
	got := MustString(doc, Compact(), EncodeColors(NewColors()))
	stripped := stripEscapes(got)
	if want := String(doc); stripped != want {
		t.Errorf("stripped colored output %q, want %q", stripped, want)
	}
}

func stripEscapes(s string) string {
	b := &strings.Builder{}
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			i++
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
