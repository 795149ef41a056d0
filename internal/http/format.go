package http

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatCurrency renders an amount as dollars with two decimals and
// thousands separators, e.g. $1,234.56.
func formatCurrency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := "$" + b.String() + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}
