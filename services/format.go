package services

import (
	"math"
	"strconv"
)

// FormatCOP formats a COP amount like "$12.500", using the dot thousands
// separator common in Colombia. Fractions round to the nearest peso.
func FormatCOP(amount float64) string {
	neg := amount < 0
	pesos := int64(math.Round(math.Abs(amount)))

	s := strconv.FormatInt(pesos, 10)
	grouped := applyThousandsGrouping(s)

	if neg {
		return "-$" + grouped
	}
	return "$" + grouped
}

// applyThousandsGrouping inserts a dot every three digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}
