package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"fintrack/internal/core"
	"fintrack/internal/export"
	applog "fintrack/internal/log"
	"fintrack/internal/report"
)

// handleOverview renders the overview partial: totals, monthly trend bars
// and the expense breakdown.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	txs, err := s.reader.Transactions(r.Context())
	if err != nil {
		s.renderPartialError(w, r, "overview")
		return
	}

	type trendRow struct {
		Month   string
		Kind    core.Kind
		Amount  string
		Width   int
		Expense bool
	}
	type breakdownRow struct {
		Category core.Category
		Amount   string
		Share    string
		Width    int
	}
	data := struct {
		HasData       bool
		TotalIncome   string
		TotalExpenses string
		NetBalance    string
		NetNegative   bool
		Trend         []trendRow
		Breakdown     []breakdownRow
	}{HasData: len(txs) > 0}

	if data.HasData {
		totals := report.ComputeTotals(txs)
		data.TotalIncome = totals.Income.String()
		data.TotalExpenses = totals.Expenses.String()
		data.NetBalance = totals.Net.String()
		data.NetNegative = totals.Net.Cents < 0

		trend := report.MonthlyTrend(txs)
		var maxTrend int64
		for _, p := range trend {
			if p.Amount.Cents > maxTrend {
				maxTrend = p.Amount.Cents
			}
		}
		for _, p := range trend {
			data.Trend = append(data.Trend, trendRow{
				Month:   p.Month,
				Kind:    p.Kind,
				Amount:  p.Amount.String(),
				Width:   barWidth(p.Amount.Cents, maxTrend),
				Expense: p.Kind == core.KindExpense,
			})
		}

		breakdown := report.ExpenseBreakdown(txs)
		for _, row := range breakdown {
			share := 0.0
			if totals.Expenses.Cents > 0 {
				share = float64(row.Amount.Cents) / float64(totals.Expenses.Cents) * 100
			}
			data.Breakdown = append(data.Breakdown, breakdownRow{
				Category: row.Category,
				Amount:   row.Amount.String(),
				Share:    fmt.Sprintf("%.1f%%", share),
				Width:    barWidth(row.Amount.Cents, totals.Expenses.Cents),
			})
		}
	}

	s.renderPartial(w, r, "overview.html", data)
}

// handleTransactions renders the history partial, sorted by date descending.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	txs, err := s.reader.Transactions(r.Context())
	if err != nil {
		s.renderPartialError(w, r, "transactions")
		return
	}

	// Display order only; the export keeps insertion order.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date.Time)
	})

	type txRow struct {
		Date        string
		Description string
		Category    core.Category
		Amount      string
		Kind        core.Kind
		Income      bool
	}
	data := struct {
		HasData bool
		Rows    []txRow
	}{HasData: len(txs) > 0}
	for _, t := range txs {
		data.Rows = append(data.Rows, txRow{
			Date:        t.Date.Format("2006-01-02"),
			Description: t.Description,
			Category:    t.Category,
			Amount:      t.Amount.String(),
			Kind:        t.Kind,
			Income:      t.Kind == core.KindIncome,
		})
	}

	s.renderPartial(w, r, "transactions.html", data)
}

// handleBudgets renders the budget-vs-actual partial.
func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	txs, err := s.reader.Transactions(r.Context())
	if err != nil {
		s.renderPartialError(w, r, "budgets")
		return
	}
	budgets, err := s.reader.Budgets(r.Context())
	if err != nil {
		s.renderPartialError(w, r, "budgets")
		return
	}

	type budgetRow struct {
		Category    core.Category
		Limit       string
		Actual      string
		Remaining   string
		Over        bool
		PercentUsed string
		UsedWidth   int
		LimitWidth  int
		ActualWidth int
	}
	data := struct {
		HasData bool
		Rows    []budgetRow
	}{HasData: len(txs) > 0 && len(budgets) > 0}

	if data.HasData {
		rows := report.BudgetVsActual(txs, budgets)

		// Scale the grouped bars against the largest limit or actual.
		var max int64
		for _, row := range rows {
			if row.Limit.Cents > max {
				max = row.Limit.Cents
			}
			if row.Actual.Cents > max {
				max = row.Actual.Cents
			}
		}
		for _, row := range rows {
			usedWidth := int(row.PercentUsed)
			if usedWidth > 100 {
				usedWidth = 100
			}
			data.Rows = append(data.Rows, budgetRow{
				Category:    row.Category,
				Limit:       row.Limit.String(),
				Actual:      row.Actual.String(),
				Remaining:   row.Remaining.String(),
				Over:        row.Remaining.Cents < 0,
				PercentUsed: fmt.Sprintf("%.1f%%", row.PercentUsed),
				UsedWidth:   usedWidth,
				LimitWidth:  barWidth(row.Limit.Cents, max),
				ActualWidth: barWidth(row.Actual.Cents, max),
			})
		}
	}

	s.renderPartial(w, r, "budgets.html", data)
}

// handleExportCSV streams the ledger as a CSV attachment in insertion
// order, independent of the on-screen sort.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	txs, err := s.reader.Transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export snapshot error", applog.FieldError, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	if err := export.WriteTransactions(w, txs); err != nil {
		// Headers are gone at this point; just log it.
		slog.ErrorContext(r.Context(), "CSV export error", applog.FieldError, err)
	}
}

func (s *Server) renderPartial(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", applog.FieldError, err, "template", name)
		_, _ = w.Write([]byte(`<div class="placeholder">Error rendering view</div>`))
	}
}

func (s *Server) renderPartialError(w http.ResponseWriter, r *http.Request, view string) {
	slog.ErrorContext(r.Context(), "Ledger snapshot error", applog.FieldPath, r.URL.Path, "view", view)
	_, _ = w.Write([]byte(`<div class="placeholder">Error loading view</div>`))
}
