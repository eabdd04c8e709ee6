package common

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -1, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 11, 0, 10, 10},
		{"at_low", 0, 0, 10, 0},
		{"at_high", 10, 0, 10, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestClampOffset(t *testing.T) {
	if got := ClampOffset(100, 4800, 1280); got != 100 {
		t.Fatalf("in-range offset changed: %v", got)
	}
	if got := ClampOffset(4000, 4800, 1280); got != 3520 {
		t.Fatalf("over-range offset = %v, want 3520", got)
	}
	if got := ClampOffset(-5, 4800, 1280); got != 0 {
		t.Fatalf("negative offset = %v, want 0", got)
	}
	// world smaller than view collapses to zero instead of going negative
	if got := ClampOffset(50, 640, 1280); got != 0 {
		t.Fatalf("small-world offset = %v, want 0", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp midpoint = %v", got)
	}
	if got := Lerp(2, 2, 0.9); got != 2 {
		t.Fatalf("Lerp equal endpoints = %v", got)
	}
}
