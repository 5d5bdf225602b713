// Package money provides BRL formatting, lenient currency parsing and the
// numeric guards shared by the pricing engine and the web layer. A monetary
// value is "displayable" when it is a positive, finite number; anything else
// (zero, negative, NaN) is treated as absent and rendered empty.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Displayable reports whether v is a positive, finite amount that should be
// shown to the user and summed into totals.
func Displayable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Safe returns v when it is displayable, otherwise the given minimum. The
// result is never below minimum.
func Safe(v, minimum float64) float64 {
	if !Displayable(v) {
		return minimum
	}
	return math.Max(minimum, v)
}

// FormatBRL formats an amount in Brazilian notation: "R$ 1.234,56".
// The result always carries exactly 2 decimal places.
func FormatBRL(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "R$ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatBRLIfValid formats v when displayable and returns "" otherwise.
func FormatBRLIfValid(v float64) string {
	if !Displayable(v) {
		return ""
	}
	return FormatBRL(v)
}

// groupThousands inserts dots into an integer string every 3 digits from
// the right, per Brazilian convention.
func groupThousands(s string) string {
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

// ParseBRL parses user-typed currency text. It strips the currency symbol,
// spaces and thousand separators, accepts a comma as the decimal mark and
// never returns a negative or NaN amount; junk parses to 0.
func ParseBRL(value string) float64 {
	normalized := strings.NewReplacer("R$", "", " ", "", ".", "").Replace(value)
	normalized = strings.ReplaceAll(normalized, ",", ".")
	normalized = strings.TrimSpace(normalized)

	parsed, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return math.Max(0, parsed)
}

// ParsePercent parses a user-typed percentage ("10", "10,5") into a
// fraction in [0, 1]. Junk or out-of-range input parses to 0.
func ParsePercent(value string) float64 {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	parsed, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(parsed) || parsed < 0 || parsed > 100 {
		return 0
	}
	return parsed / 100
}
