package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDateRoundTrip(t *testing.T) {
	cases := []string{"01.03.2024", "31.12.1999", "29.02.2020"}
	for _, in := range cases {
		d, err := ParseDate(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got := d.String(); got != in {
			t.Fatalf("%q round-tripped to %q", in, got)
		}
	}
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	bads := []string{"", "2024-03-01", "01/03/2024", "32.01.2024", "01.13.2024", "garbage"}
	for _, in := range bads {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("%q: expected error", in)
		} else if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q: expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"Income", "Expense", " Income "} {
		if _, err := ParseCategory(in); err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
	}
	for _, in := range []string{"", "income", "Savings", "EXPENSE"} {
		if _, err := ParseCategory(in); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("%q: expected ErrInvalidCategory, got %v", in, err)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:        NewDate(2024, 3, 1),
		Amount:      decimal.RequireFromString("500.00"),
		Category:    Income,
		Description: "Salary",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Amount: decimal.NewFromInt(1), Category: Income},                             // zero date
		{Date: NewDate(2024, 3, 1), Amount: decimal.Zero, Category: Income},           // zero amount
		{Date: NewDate(2024, 3, 1), Amount: decimal.NewFromInt(-5), Category: Income}, // negative amount
		{Date: NewDate(2024, 3, 1), Amount: decimal.NewFromInt(1), Category: "Other"}, // unknown category
	}
	for i, tr := range bads {
		if err := tr.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestValidateRange(t *testing.T) {
	start := NewDate(2024, 3, 1)
	end := NewDate(2024, 3, 31)
	if err := ValidateRange(start, end); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := ValidateRange(start, start); err != nil {
		t.Fatalf("equal bounds expected ok, got %v", err)
	}
	if err := ValidateRange(end, start); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"0.01", "0.01", true},
		{"1.23", "1.23", true},
		{"1,23", "1.23", true},
		{" 2.50 ", "2.5", true},
		{"1234.567", "1234.567", true},
		{"0", "", false},
		{"-1", "", false},
		{"+1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", tc.in, err)
			}
			if got.String() != tc.out {
				t.Fatalf("%q: expected %s, got %s", tc.in, tc.out, got)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}
