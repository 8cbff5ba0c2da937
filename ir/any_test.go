package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("alice")},
		{Key: "age", Val: FromInt(30)},
		{Key: "tags", Val: FromSlice([]*Node{FromString("a"), Null()})},
	})
	want := map[string]any{
		"name": "alice",
		"age":  float64(30),
		"tags": []any{"a", nil},
	}
	if d := cmp.Diff(want, ToAny(node)); d != "" {
		t.Errorf("ToAny (-want +got):\n%s", d)
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	node := FromMap(map[string]*Node{
		"b":    FromBool(true),
		"n":    FromFloat(0.5),
		"s":    FromString("x"),
		"null": Null(),
		"arr":  FromSlice([]*Node{FromInt(1), FromInt(2)}),
	})
	back, err := FromAny(ToAny(node))
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if !Equal(node, back) {
		t.Errorf("round trip lost content:\n%v\nvs\n%v", ToAny(node), ToAny(back))
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("FromAny(struct{}{}): expected error")
	}
	if _, err := FromAny([]any{make(chan int)}); err == nil {
		t.Error("FromAny with chan element: expected error")
	}
}
