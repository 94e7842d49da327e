package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatKronor renders a whole-krona amount with a thin-space thousands
// separator and "kr" suffix, the way Swedish statements print amounts.
// Example: -12345 -> "-12 345 kr".
func FormatKronor(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	out := b.String() + " kr"
	if neg {
		out = "-" + out
	}
	return out
}
