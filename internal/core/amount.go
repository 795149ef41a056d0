// Package core provides the transaction domain model and parsing helpers.
//
// This file contains amount parsing for form and CLI input. Amounts are
// decimals with no rounding rules beyond what the decimal type preserves.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-supplied string to a positive decimal amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs
// are rejected: only strictly positive amounts are legal at entry time.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
