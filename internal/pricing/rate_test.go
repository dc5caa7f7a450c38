package pricing

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"decimal", 0.2, 0.2},
		{"exactly one stays decimal", 1, 1},
		{"percentage", 20, 0.2},
		{"just above one", 1.5, 0.015},
		{"above hundred", 250, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRate(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeRate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeRate_Invalid(t *testing.T) {
	for _, in := range []float64{-0.01, -20, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NormalizeRate(in)
		if !errors.Is(err, ErrInvalidRate) {
			t.Errorf("NormalizeRate(%v): expected ErrInvalidRate, got %v", in, err)
		}
		var rateErr *InvalidRateError
		if !errors.As(err, &rateErr) {
			t.Errorf("NormalizeRate(%v): expected *InvalidRateError, got %T", in, err)
		}
	}
}

func TestNormalizeRate_Law(t *testing.T) {
	for r := 0.0; r <= 300; r += 0.25 {
		got, err := NormalizeRate(r)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", r, err)
		}
		want := r
		if r > 1 {
			want = r / 100
		}
		if got != want {
			t.Errorf("NormalizeRate(%v) = %v, want %v", r, got, want)
		}
	}
}
