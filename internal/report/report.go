// Package report derives summary metrics and chart series from a retrieved
// transaction set. All functions are pure: no I/O, inputs never mutated,
// deterministic for a given input.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Summary holds the three headline totals for a transaction set.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetSavings   decimal.Decimal
}

// TimeSeries carries aligned daily Income and Expense sums over the ordered
// distinct set of dates present in the input. Income[i] and Expense[i] both
// belong to Dates[i]; days with no rows of a category hold zero.
type TimeSeries struct {
	Dates   []core.Date
	Income  []decimal.Decimal
	Expense []decimal.Decimal
}

// Empty reports whether there is nothing to chart.
func (ts TimeSeries) Empty() bool { return len(ts.Dates) == 0 }

// Summarize computes total income, total expense and net savings
// (income minus expense). Empty input yields all zeroes.
func Summarize(txs []core.Transaction) Summary {
	sum := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range txs {
		switch t.Category {
		case core.Income:
			sum.TotalIncome = sum.TotalIncome.Add(t.Amount)
		case core.Expense:
			sum.TotalExpense = sum.TotalExpense.Add(t.Amount)
		}
	}
	sum.NetSavings = sum.TotalIncome.Sub(sum.TotalExpense)
	return sum
}

// BuildTimeSeries groups the input by day and category. The date axis is the
// sorted distinct set of dates present in the input; both series are
// re-indexed over it with missing days filled as zero. Empty input yields
// empty series and the caller skips rendering.
func BuildTimeSeries(txs []core.Transaction) TimeSeries {
	if len(txs) == 0 {
		return TimeSeries{}
	}

	type daily struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	byDay := make(map[string]*daily, len(txs))
	var dates []core.Date
	for _, t := range txs {
		key := t.Date.String()
		d, ok := byDay[key]
		if !ok {
			d = &daily{income: decimal.Zero, expense: decimal.Zero}
			byDay[key] = d
			dates = append(dates, t.Date)
		}
		switch t.Category {
		case core.Income:
			d.income = d.income.Add(t.Amount)
		case core.Expense:
			d.expense = d.expense.Add(t.Amount)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j].Time) })

	ts := TimeSeries{
		Dates:   dates,
		Income:  make([]decimal.Decimal, len(dates)),
		Expense: make([]decimal.Decimal, len(dates)),
	}
	for i, d := range dates {
		day := byDay[d.String()]
		ts.Income[i] = day.income
		ts.Expense[i] = day.expense
	}
	return ts
}

// CategoryBreakdown sums Expense amounts per description. Income rows are
// ignored entirely. The mapping is unordered; consumers sort as needed. An
// empty or all-income input yields an empty map, meaning nothing to analyze.
func CategoryBreakdown(txs []core.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Category != core.Expense {
			continue
		}
		total, ok := out[t.Description]
		if !ok {
			total = decimal.Zero
		}
		out[t.Description] = total.Add(t.Amount)
	}
	return out
}
