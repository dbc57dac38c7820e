package utils

import "testing"

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "£0.00"},
		{999.5, "£999.50"},
		{1000, "£1,000.00"},
		{7563.89, "£7,563.89"},
		{107842.59, "£107,842.59"},
		{1234567.891, "£1,234,567.89"},
		{-28400, "-£28,400.00"},
	}
	for _, tc := range tests {
		if got := FormatGBP(tc.in); got != tc.want {
			t.Errorf("FormatGBP(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTons(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{200, "200"},
		{199.99999, "200"},
		{62.5, "62.5"},
		{-85.7, "-85.7"},
	}
	for _, tc := range tests {
		if got := FormatTons(tc.in); got != tc.want {
			t.Errorf("FormatTons(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
