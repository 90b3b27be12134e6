package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

func tx(date core.Date, cat core.Category, cents int64, kind core.Kind) core.Transaction {
	return core.Transaction{Date: date, Category: cat, Amount: core.Money{Cents: cents}, Kind: kind}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil)
	assert.Zero(t, got.Income.Cents)
	assert.Zero(t, got.Expenses.Cents)
	assert.Zero(t, got.Net.Cents)
}

func TestComputeTotalsNetIdentity(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 1, 1), core.CategoryOther, 120000, core.KindIncome),
		tx(core.NewDate(2024, 1, 5), core.CategoryFood, 5000, core.KindExpense),
		tx(core.NewDate(2024, 2, 1), core.CategoryRent, 80000, core.KindExpense),
		tx(core.NewDate(2024, 2, 2), core.CategoryOther, 333, core.KindIncome),
	}
	got := ComputeTotals(txs)
	assert.Equal(t, int64(120333), got.Income.Cents)
	assert.Equal(t, int64(85000), got.Expenses.Cents)
	assert.Equal(t, got.Income.Cents-got.Expenses.Cents, got.Net.Cents)
}

func TestMonthlyTrendGrouping(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 2, 10), core.CategoryFood, 3000, core.KindExpense),
		tx(core.NewDate(2024, 1, 5), core.CategoryFood, 5000, core.KindExpense),
		tx(core.NewDate(2024, 1, 20), core.CategoryTransport, 1500, core.KindExpense),
		tx(core.NewDate(2024, 1, 1), core.CategoryOther, 90000, core.KindIncome),
	}
	points := MonthlyTrend(txs)
	require.Len(t, points, 3)

	// Ascending by month, then kind.
	assert.Equal(t, TrendPoint{"2024-01", core.KindExpense, core.Money{Cents: 6500}}, points[0])
	assert.Equal(t, TrendPoint{"2024-01", core.KindIncome, core.Money{Cents: 90000}}, points[1])
	assert.Equal(t, TrendPoint{"2024-02", core.KindExpense, core.Money{Cents: 3000}}, points[2])
}

func TestMonthlyTrendSumsMatchTotals(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2023, 12, 31), core.CategoryOther, 100, core.KindIncome),
		tx(core.NewDate(2024, 1, 1), core.CategoryOther, 200, core.KindIncome),
		tx(core.NewDate(2024, 1, 2), core.CategoryFood, 300, core.KindExpense),
		tx(core.NewDate(2024, 3, 2), core.CategoryFood, 400, core.KindExpense),
	}
	totals := ComputeTotals(txs)

	var income, expenses int64
	for _, p := range MonthlyTrend(txs) {
		switch p.Kind {
		case core.KindIncome:
			income += p.Amount.Cents
		case core.KindExpense:
			expenses += p.Amount.Cents
		}
	}
	assert.Equal(t, totals.Income.Cents, income)
	assert.Equal(t, totals.Expenses.Cents, expenses)
}

func TestMonthlyTrendEmpty(t *testing.T) {
	assert.Empty(t, MonthlyTrend(nil))
}

func TestExpenseBreakdownOmitsEmptyCategories(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 1, 5), core.CategoryFood, 5000, core.KindExpense),
		tx(core.NewDate(2024, 1, 6), core.CategoryFood, 1000, core.KindExpense),
		tx(core.NewDate(2024, 1, 7), core.CategoryRent, 80000, core.KindExpense),
		// Income never shows up in the breakdown, whatever its category.
		tx(core.NewDate(2024, 1, 8), core.CategoryTransport, 2000, core.KindIncome),
	}
	rows := ExpenseBreakdown(txs)
	require.Len(t, rows, 2)
	assert.Equal(t, core.CategoryRent, rows[0].Category)
	assert.Equal(t, int64(80000), rows[0].Amount.Cents)
	assert.Equal(t, core.CategoryFood, rows[1].Category)
	assert.Equal(t, int64(6000), rows[1].Amount.Cents)
}

func TestBudgetVsActualZeroFill(t *testing.T) {
	budgets := []core.Budget{
		{Category: core.CategoryFood, Limit: core.Money{Cents: 10000}},
	}
	rows := BudgetVsActual(nil, budgets)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(0), rows[0].Actual.Cents)
	assert.Equal(t, int64(10000), rows[0].Remaining.Cents)
	assert.Equal(t, 0.0, rows[0].PercentUsed)
}

func TestBudgetVsActualDropsUnbudgetedCategories(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 1, 5), core.CategoryFood, 5000, core.KindExpense),
		tx(core.NewDate(2024, 1, 6), core.CategoryRent, 80000, core.KindExpense),
	}
	budgets := []core.Budget{
		{Category: core.CategoryFood, Limit: core.Money{Cents: 10000}},
	}
	rows := BudgetVsActual(txs, budgets)
	require.Len(t, rows, 1)
	assert.Equal(t, core.CategoryFood, rows[0].Category)
}

func TestBudgetVsActualOverBudget(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 1, 5), core.CategoryFood, 15000, core.KindExpense),
	}
	budgets := []core.Budget{
		{Category: core.CategoryFood, Limit: core.Money{Cents: 10000}},
	}
	rows := BudgetVsActual(txs, budgets)
	require.Len(t, rows, 1)
	// Percentage is raw, not clamped at 100.
	assert.InDelta(t, 150.0, rows[0].PercentUsed, 1e-9)
	assert.Equal(t, int64(-5000), rows[0].Remaining.Cents)
}

func TestScenarioFoodBudget(t *testing.T) {
	txs := []core.Transaction{
		tx(core.NewDate(2024, 1, 5), core.CategoryFood, 5000, core.KindExpense),
		tx(core.NewDate(2024, 2, 10), core.CategoryFood, 3000, core.KindExpense),
	}
	budgets := []core.Budget{
		{Category: core.CategoryFood, Limit: core.Money{Cents: 10000}},
	}

	totals := ComputeTotals(txs)
	assert.Equal(t, int64(8000), totals.Expenses.Cents)

	rows := BudgetVsActual(txs, budgets)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(8000), rows[0].Actual.Cents)
	assert.Equal(t, int64(2000), rows[0].Remaining.Cents)
	assert.InDelta(t, 80.0, rows[0].PercentUsed, 1e-9)

	points := MonthlyTrend(txs)
	require.Len(t, points, 2)
	assert.Equal(t, TrendPoint{"2024-01", core.KindExpense, core.Money{Cents: 5000}}, points[0])
	assert.Equal(t, TrendPoint{"2024-02", core.KindExpense, core.Money{Cents: 3000}}, points[1])
}
