package tui

import (
	"math"
	"strconv"
)

// parseAmount coerces a text field value to a decimal. Unparsable or
// non-finite input maps to 0, never to an error state. ParseFloat accepts
// "NaN" and "Inf" spellings; neither may reach the invoice.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseQuantity coerces a text field value to an integer quantity.
// Unparsable input maps to 0.
func parseQuantity(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
