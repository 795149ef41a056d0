package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the fixed textual format for transaction dates
// (day.month.year). Stored rows and user-facing dates both use it; any
// reader of the ledger file must match it exactly.
const DateFormat = "02.01.2006"

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

type (
	// Category is the closed set of transaction kinds: money in or money out.
	Category string

	// Date is a calendar day. It carries no time-of-day or timezone
	// semantics; comparisons are day-granular.
	Date struct {
		time.Time
	}

	// Transaction is one dated financial record. Description doubles as the
	// grouping key in expense analysis.
	Transaction struct {
		Date        Date
		Amount      decimal.Decimal
		Category    Category
		Description string
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")

	// ErrInvalidRange marks a caller-supplied query whose start date falls
	// after its end date. Callers reject it before the store is touched.
	ErrInvalidRange = errors.New("start date cannot be after end date")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in the fixed DD.MM.YYYY format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// DateOf truncates an arbitrary timestamp to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// String formats the date in the fixed DD.MM.YYYY format, so that a parsed
// date round-trips exactly.
func (d Date) String() string {
	return d.Format(DateFormat)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ParseCategory maps user input onto the closed category set.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.TrimSpace(s)); c {
	case Income, Expense:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) Validate() error {
	switch c {
	case Income, Expense:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
}

// Validate enforces the entry-time invariants: a real date, a positive
// amount and a legal category. Stored rows are not re-validated on read.
func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if t.Amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if err := t.Category.Validate(); err != nil {
		return err
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

// ValidateRange rejects ranges whose start date is after the end date.
func ValidateRange(start, end Date) error {
	if start.After(end.Time) {
		return ErrInvalidRange
	}
	return nil
}
