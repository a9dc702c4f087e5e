package services

import "testing"

func TestFormatCOP(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "$0"},
		{"hundreds", 500, "$500"},
		{"boundary thousand", 1000, "$1.000"},
		{"typical unit price", 49000, "$49.000"},
		{"typical base cost", 12500, "$12.500"},
		{"hundred thousands", 98000, "$98.000"},
		{"millions", 1234567, "$1.234.567"},
		{"negative", -9500, "-$9.500"},
		{"fraction rounds", 12.6, "$13"},
		{"fraction rounds down", 12.4, "$12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCOP(tt.input); got != tt.expect {
				t.Errorf("FormatCOP(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyThousandsGrouping(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"5", "5"},
		{"999", "999"},
		{"1000", "1.000"},
		{"45000", "45.000"},
		{"123456", "123.456"},
		{"1234567", "1.234.567"},
		{"123456789", "123.456.789"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := applyThousandsGrouping(tt.input); got != tt.expect {
				t.Errorf("applyThousandsGrouping(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
