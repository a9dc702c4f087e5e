package services

import (
	"strconv"
	"strings"
)

// CoercePrice turns an operator-entered cell into a COP amount. Every rune
// that is not a digit or a decimal point is stripped before parsing, so
// "$ 45000" reads as 45000 and "15.000" reads as 15 — the dot survives as a
// decimal point even when it was meant as a thousands separator. A leading
// minus sign is preserved. Empty or unparsable input coerces to 0; this is
// operator-entered business data, so availability beats strictness.
func CoercePrice(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	if strings.HasPrefix(trimmed, "-") {
		digits = "-" + digits
	}

	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		// More than one dot, or a bare ".": no number here.
		return 0
	}
	return v
}

// CoerceQty parses a quantity-like cell, coercing anything unparsable or
// negative to 0.
func CoerceQty(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		f, ferr := strconv.ParseFloat(trimmed, 64)
		if ferr != nil {
			return 0
		}
		v = int(f)
	}
	if v < 0 {
		return 0
	}
	return v
}
