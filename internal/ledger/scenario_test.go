package ledger

import (
	"context"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

// Append three months of activity, retrieve one month, and run the full
// reporting pipeline over the retrieved subset.
func TestAppendRetrieveReportScenario(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, tx := range []core.Transaction{
		mustTx(t, "01.03.2024", "500.00", "Income", "Salary"),
		mustTx(t, "05.03.2024", "50.00", "Expense", "Groceries"),
		mustTx(t, "10.04.2024", "20.00", "Expense", "Transport"),
	} {
		if err := s.Append(ctx, tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	march, err := s.Between(ctx, core.NewDate(2024, 3, 1), core.NewDate(2024, 3, 31))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(march) != 2 {
		t.Fatalf("expected 2 march rows, got %d", len(march))
	}
	if march[0].Description != "Salary" || march[1].Description != "Groceries" {
		t.Fatalf("unexpected rows: %+v", march)
	}

	sum := report.Summarize(march)
	if sum.TotalIncome.String() != "500" || sum.TotalExpense.String() != "50" || sum.NetSavings.String() != "450" {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	breakdown := report.CategoryBreakdown(march)
	if len(breakdown) != 1 || breakdown["Groceries"].String() != "50" {
		t.Fatalf("unexpected breakdown: %v", breakdown)
	}
}
