package entity

import "testing"

func TestParseNumberWords(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"iki", 2, true},
		{"iki yüz", 102, true},
		{"yüzelli", 150, true},
		{"üç bin", 1003, true},
		{"Bir Milyon", 1000001, true},
		{"merhaba", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumberWords(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseNumberWords(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1000", 1000, true},
		{"1.000", 1000, true},
		{"1.000,50", 1000.5, true},
		{"1,000.50", 1000.5, true},
		{"12,5", 12.5, true},
		{"1.234.567", 1234567, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseDecimal(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseDecimal(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
