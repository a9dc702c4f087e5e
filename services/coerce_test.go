package services

import "testing"

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"plain integer", "45000", 45000},
		{"decimal", "1700.5", 1700.5},
		{"currency prefix", "$ 45000", 45000},
		{"currency suffix", "170 COP", 170},
		{"thousands-dot reads as decimal", "15.000", 15},
		{"whitespace", "  12000  ", 12000},
		{"negative preserved", "-1500", -1500},
		{"negative with symbol", "-$1500", -1500},
		{"empty", "", 0},
		{"only text", "sin precio", 0},
		{"double dot unparsable", "1.234.567", 0},
		{"lone dot", ".", 0},
		{"comma stripped", "45,000", 45000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoercePrice(tt.input); got != tt.expect {
				t.Errorf("CoercePrice(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestCoerceQty(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect int
	}{
		{"integer", "3", 3},
		{"whitespace", " 12 ", 12},
		{"float truncates", "2.9", 2},
		{"zero", "0", 0},
		{"negative coerces to zero", "-5", 0},
		{"empty", "", 0},
		{"non-numeric", "muchos", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceQty(tt.input); got != tt.expect {
				t.Errorf("CoerceQty(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
