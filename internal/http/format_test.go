package http

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1", "$1.00"},
		{"1.5", "$1.50"},
		{"999.99", "$999.99"},
		{"1000", "$1,000.00"},
		{"1234.56", "$1,234.56"},
		{"1234567.89", "$1,234,567.89"},
		{"-15.5", "-$15.50"},
		{"-1234567", "-$1,234,567.00"},
	}
	for _, tc := range cases {
		if got := formatCurrency(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}
