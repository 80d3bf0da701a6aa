package shared

import (
	"math"
	"strconv"
	"strings"
)

// ParseQuantity reads a possibly comma-grouped numeral ("1,250") as a
// non-negative integer. Anything besides digits and commas is stripped
// first; unparseable input yields 0.
func ParseQuantity(s string) int {
	cleaned := stripExcept(s, false)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseAmount reads a possibly comma-grouped decimal numeral ("1,250.50").
// Digits, commas and a single decimal point survive the cleanup; commas are
// treated as grouping separators. Unparseable input yields 0.
func ParseAmount(s string) float64 {
	cleaned := stripExcept(s, true)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if i := strings.Index(cleaned, "."); i >= 0 {
		cleaned = cleaned[:i+1] + strings.ReplaceAll(cleaned[i+1:], ".", "")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Round2 rounds to 2 decimal places, the precision every persisted and
// displayed amount carries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func stripExcept(s string, allowDot bool) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',':
			b.WriteRune(r)
		case r == '.' && allowDot:
			b.WriteRune(r)
		}
	}
	return b.String()
}
