// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a money value with two decimals and comma grouping.
// e.g., 1684.5 -> "1,684.50"
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(whole) + "." + frac
}

// FormatOptional renders an optional amount, or a dash when absent.
func FormatOptional(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return FormatAmount(d.Decimal)
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
