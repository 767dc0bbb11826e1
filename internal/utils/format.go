package utils

import (
	"fmt"
	"strings"
)

// FormatNaira formats an amount as naira with thousands separators,
// e.g. 1500000 -> "₦1,500,000"
func FormatNaira(amount float64) string {
	whole := int64(amount)
	s := fmt.Sprintf("%d", whole)

	if whole < 0 {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	formatted := strings.Join(parts, ",")
	if whole < 0 {
		formatted = "-" + formatted
	}
	return "₦" + formatted
}

// Truncate shortens s to at most n runes, appending "..." when cut
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
