// Package report derives summaries from ledger snapshots. Every function is
// pure: it reads the slices it is given and returns fresh values. Empty
// inputs yield empty results, never errors.
package report

import (
	"sort"

	"fintrack/internal/core"
)

// Totals are the headline figures of the overview.
type Totals struct {
	Income   core.Money
	Expenses core.Money
	Net      core.Money
}

// TrendPoint is one (month, kind) group of the monthly trend, with the
// summed amount. Month is at year-month granularity ("2024-03").
type TrendPoint struct {
	Month  string
	Kind   core.Kind
	Amount core.Money
}

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Category core.Category
	Amount   core.Money
}

// BudgetRow joins a budget with the actual expenses of its category.
type BudgetRow struct {
	Category    core.Category
	Limit       core.Money
	Actual      core.Money
	Remaining   core.Money
	PercentUsed float64
}

// ComputeTotals sums income and expenses and derives the net balance.
func ComputeTotals(txs []core.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Kind {
		case core.KindIncome:
			t.Income = t.Income.Add(tx.Amount)
		case core.KindExpense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expenses)
	return t
}

// MonthlyTrend groups transactions by (calendar month, kind) and sums the
// amounts, producing one point per non-empty group, ascending by month and
// then by kind.
func MonthlyTrend(txs []core.Transaction) []TrendPoint {
	type key struct {
		month string
		kind  core.Kind
	}
	sums := make(map[key]int64)
	for _, tx := range txs {
		sums[key{tx.Date.MonthKey(), tx.Kind}] += tx.Amount.Cents
	}

	points := make([]TrendPoint, 0, len(sums))
	for k, cents := range sums {
		points = append(points, TrendPoint{
			Month:  k.month,
			Kind:   k.kind,
			Amount: core.Money{Cents: cents},
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Month != points[j].Month {
			return points[i].Month < points[j].Month
		}
		return points[i].Kind < points[j].Kind
	})
	return points
}

// ExpenseBreakdown sums expense amounts per category. Categories without
// expenses are omitted, not zero-filled. Rows are sorted by amount
// descending so the biggest spenders come first; ties fall back to the
// fixed category order.
func ExpenseBreakdown(txs []core.Transaction) []CategoryAmount {
	sums := expenseSums(txs)
	rows := make([]CategoryAmount, 0, len(sums))
	for _, c := range core.Categories() {
		if cents, ok := sums[c]; ok {
			rows = append(rows, CategoryAmount{Category: c, Amount: core.Money{Cents: cents}})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.Cents > rows[j].Amount.Cents
	})
	return rows
}

// BudgetVsActual joins each budget against the expense total of its
// category. The join is budget-driven: a category with a budget and no
// expenses gets a zero actual, while expenses without a budget are dropped.
// Budget limits are validated positive, so the percentage is always defined.
func BudgetVsActual(txs []core.Transaction, budgets []core.Budget) []BudgetRow {
	sums := expenseSums(txs)
	rows := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		actual := core.Money{Cents: sums[b.Category]}
		rows = append(rows, BudgetRow{
			Category:    b.Category,
			Limit:       b.Limit,
			Actual:      actual,
			Remaining:   b.Limit.Sub(actual),
			PercentUsed: float64(actual.Cents) / float64(b.Limit.Cents) * 100,
		})
	}
	return rows
}

func expenseSums(txs []core.Transaction) map[core.Category]int64 {
	sums := make(map[core.Category]int64)
	for _, tx := range txs {
		if tx.Kind == core.KindExpense {
			sums[tx.Category] += tx.Amount.Cents
		}
	}
	return sums
}
