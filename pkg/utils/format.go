// Package utils provides common utility functions for blendplan.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatGBP formats an amount in pound sterling with thousands grouping
// (£107,842.59). Plan economics are quoted in £/ton throughout.
func FormatGBP(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	intPart := int64(amount)
	frac := amount - float64(intPart)

	formatted := groupThousands(intPart)
	formatted += fmt.Sprintf("%.2f", frac)[1:] // skip the leading "0"

	if negative {
		return "-£" + formatted
	}
	return "£" + formatted
}

// FormatTons formats a quantity in tons with one decimal, trimming the
// decimal entirely for whole values ("200", "62.5").
func FormatTons(qty float64) string {
	if math.Abs(qty-math.Round(qty)) < 0.05 {
		return fmt.Sprintf("%.0f", math.Round(qty))
	}
	return fmt.Sprintf("%.1f", qty)
}

// groupThousands renders an integer with "," every three digits.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
