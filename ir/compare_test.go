package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison, all numbers are float64
		{"1 < 2", FromInt(1), FromInt(2), -1},
		{"int == float", FromInt(1), FromFloat(1.0), 0},
		{"-0.5 < 0.5", FromFloat(-0.5), FromFloat(0.5), -1},

		// String Comparison
		{"a < b", FromString("a"), FromString("b"), -1},
		{"a == a", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"[] == []", FromSlice(nil), FromSlice(nil), 0},
		{"short < long", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"elementwise", FromSlice([]*Node{FromInt(2)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), 1},

		// Object Comparison, insertion order is irrelevant
		{"{} == {}", FromKeyVals(nil), FromKeyVals(nil), 0},
		{
			"key order irrelevant",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			0,
		},
		{
			"differing value",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1,
		},
		{
			"differing key set",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1,
		},

		// Nil handling
		{"nil < node", nil, Null(), -1},
		{"node > nil", Null(), nil, 1},
		{"nil == nil", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
			if got := Equal(tt.a, tt.b); got != (tt.expected == 0) {
				t.Errorf("Equal = %v, want %v", got, tt.expected == 0)
			}
		})
	}
}
