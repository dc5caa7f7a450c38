package report

import (
	"math"
	"testing"
)

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00 €"},
		{37.5, "37,50 €"},
		{153.84615384615384, "153,85 €"},
		{1234.5, "1\u202f234,50 €"},
		{1234567.891, "1\u202f234\u202f567,89 €"},
		{-50, "-50,00 €"},
		{-1500, "-1\u202f500,00 €"},
		{30.000000000000004, "30,00 €"},
	}

	for _, tt := range tests {
		if got := FormatEuro(tt.in); got != tt.want {
			t.Errorf("FormatEuro(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPlainEuro(t *testing.T) {
	if got := FormatPlainEuro(1234.5); got != "1234.50 €" {
		t.Errorf("expected %q, got %q", "1234.50 €", got)
	}
	if got := FormatPlainEuro(40.38461538461539); got != "40.38 €" {
		t.Errorf("expected %q, got %q", "40.38 €", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00 %"},
		{0.2, "20.00 %"},
		{1.0 / 3.0, "33.33 %"},
		{0.35, "35.00 %"},
		{-0.5, "-50.00 %"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_RoundsExactBinaryValue(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"1.005 is below the tie", FormatPlainEuro(1.005), "1.00 €"},
		{"2.675 is below the tie", FormatEuro(2.675), "2,67 €"},
		{"exact tie rounds up", FormatPlainEuro(0.125), "0.13 €"},
		{"exact negative tie rounds away from zero", FormatPlainEuro(-0.125), "-0.13 €"},
		{"large amount", FormatPlainEuro(1e20), "100000000000000000000.00 €"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}

func TestFormat_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"euro +Inf", FormatEuro(math.Inf(1)), "+∞ €"},
		{"euro -Inf", FormatEuro(math.Inf(-1)), "-∞ €"},
		{"plain euro NaN", FormatPlainEuro(math.NaN()), "NaN €"},
		{"percent +Inf", FormatPercent(math.Inf(1)), "+∞ %"},
		{"percent overflowing on scale", FormatPercent(math.MaxFloat64), "+∞ %"},
		{"percent NaN", FormatPercent(math.NaN()), "NaN %"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}
