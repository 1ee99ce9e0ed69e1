package catalog

import (
	"errors"
	"testing"
)

func TestParseGridCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want GridCell
	}{
		{"Mid grid", "M-10", GridCell{Col: 13, Row: 10}},
		{"First cell", "A-1", GridCell{Col: 1, Row: 1}},
		{"Last cell", "U-21", GridCell{Col: 21, Row: 21}},
		{"Lowercase letter", "m-10", GridCell{Col: 13, Row: 10}},
		{"Surrounding whitespace", " L-9 ", GridCell{Col: 12, Row: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGridCode(tt.code)
			if err != nil {
				t.Fatalf("ParseGridCode(%q) returned error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseGridCode(%q) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestParseGridCodeErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"Letter past U", "Z-1"},
		{"Row zero", "M-0"},
		{"Row past grid", "M-22"},
		{"Negative row", "M--3"},
		{"No separator", "M10"},
		{"Multi-letter column", "AB-3"},
		{"Non-numeric row", "M-x"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGridCode(tt.code)
			if err == nil {
				t.Fatalf("ParseGridCode(%q) succeeded, want error", tt.code)
			}
			var bad *ErrBadGridCode
			if !errors.As(err, &bad) {
				t.Errorf("ParseGridCode(%q) error type = %T, want *ErrBadGridCode", tt.code, err)
			}
		})
	}
}

func TestFormatGridCodeRoundTrip(t *testing.T) {
	for _, code := range []string{"A-1", "M-10", "U-21", "K-18"} {
		cell, err := ParseGridCode(code)
		if err != nil {
			t.Fatalf("ParseGridCode(%q): %v", code, err)
		}
		if got := FormatGridCode(cell); got != code {
			t.Errorf("FormatGridCode(%+v) = %q, want %q", cell, got, code)
		}
	}
}
