package core

import "testing"

func TestFixed2(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{10, "10.00"},
		{12.345, "12.35"},
		{0.1 + 0.2, "0.30"},
		{-1.005, "-1.01"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := Fixed2(tc.in); got != tc.out {
			t.Fatalf("Fixed2(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestSumFixed2(t *testing.T) {
	if got := SumFixed2([]float64{0.1, 0.2, 0.3}); got != "0.60" {
		t.Fatalf("got %q", got)
	}
	if got := SumFixed2(nil); got != "0.00" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayUnknownCurrency(t *testing.T) {
	if got := Display(10, "ZZZ"); got != "10.00 ZZZ" {
		t.Fatalf("got %q", got)
	}
}
