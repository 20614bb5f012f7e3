package core

import (
	"encoding/json"
	"testing"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"50", 50},
		{" 12.5", 12.5},
		{"12.5abc", 12.5},
		{"1e3", 1000},
		{"1e", 1},
		{".5", 0.5},
		{"-3", -3},
		{"+4", 4},
		{"12,5", 12},
		{"abc", 0},
		{"", 0},
		{"-0", 0},
		{"1e400", 0},
		{"Infinity", 0},
	}
	for _, tc := range cases {
		if got := ParseFloat(tc.in); got != tc.out {
			t.Fatalf("ParseFloat(%q) = %v, want %v", tc.in, got, tc.out)
		}
	}
}

func TestFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		out  float64
	}{
		{"nil", nil, 0},
		{"bool", true, 0},
		{"number", json.Number("7.25"), 7.25},
		{"string", "8", 8},
		{"float", 3.5, 3.5},
		{"int", 4, 4},
		{"object", map[string]any{"a": 1}, 0},
		{"empty array", []any{}, 0},
		{"array", []any{"5"}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Float(tc.in); got != tc.out {
				t.Fatalf("Float(%v) = %v, want %v", tc.in, got, tc.out)
			}
		})
	}
}

func TestFiniteNumber(t *testing.T) {
	cases := []struct {
		in any
		ok bool
	}{
		{json.Number("10"), true},
		{json.Number("1e400"), false},
		{12.0, true},
		{"10", false},
		{nil, false},
		{true, false},
	}
	for i, tc := range cases {
		if got := FiniteNumber(tc.in); got != tc.ok {
			t.Fatalf("case %d: FiniteNumber(%v) = %v", i, tc.in, got)
		}
	}
}

func TestTruthy(t *testing.T) {
	truthy := []any{"x", json.Number("1"), 1.5, true, map[string]any{}, []any{}}
	falsy := []any{nil, "", json.Number("0"), 0.0, false}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Fatalf("expected %v to be truthy", v)
		}
	}
	for _, v := range falsy {
		if Truthy(v) {
			t.Fatalf("expected %v to be falsy", v)
		}
	}
}

func TestDecodeLoose(t *testing.T) {
	v, err := DecodeLoose([]byte(`{"n": 1.50}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, ok := v.(map[string]any)["n"].(json.Number)
	if !ok || n.String() != "1.50" {
		t.Fatalf("expected json.Number 1.50, got %#v", v)
	}
	if _, err := DecodeLoose([]byte(`{} {}`)); err == nil {
		t.Fatalf("expected error for trailing data")
	}
	if _, err := DecodeLoose([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestObjects(t *testing.T) {
	if Objects("x") != nil {
		t.Fatalf("non-sequence should yield nil")
	}
	got := Objects([]any{map[string]any{"a": 1}, 3, nil, map[string]any{}})
	if len(got) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(got))
	}
}
