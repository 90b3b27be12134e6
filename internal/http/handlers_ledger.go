package http

import (
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today      string
		Categories []core.Category
	}{
		Today:      time.Now().Format("2006-01-02"),
		Categories: core.Categories(),
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="message error">Invalid request format</div>`))
		return
	}

	date := core.Today()
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		parsed, err := core.ParseDate(v)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`<div class="message error">Invalid date</div>`))
			return
		}
		date = parsed
	}

	category, err := core.ParseCategory(r.Form.Get("category"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="message error">Invalid category</div>`))
		return
	}

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="message error">Invalid amount</div>`))
		return
	}

	kind, err := core.ParseKind(r.Form.Get("kind"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="message error">Invalid type</div>`))
		return
	}

	tx := core.Transaction{
		Date:        date,
		Description: sanitizeInput(r.Form.Get("description")),
		Category:    category,
		Amount:      core.Money{Cents: cents},
		Kind:        kind,
	}
	if err := tx.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="message error">Invalid data</div>`))
		return
	}

	ref, err := s.txWriter.AppendTransaction(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to record transaction",
			applog.FieldError, err,
			applog.FieldCategory, tx.Category,
			applog.FieldKind, tx.Kind,
			applog.FieldAmountCents, tx.Amount.Cents)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="message error">Error saving transaction</div>`))
		return
	}

	atomic.AddInt64(&s.metrics.transactionsCreated, 1)
	slog.InfoContext(r.Context(), "Transaction added",
		applog.FieldCategory, tx.Category,
		applog.FieldKind, tx.Kind,
		applog.FieldAmountCents, tx.Amount.Cents,
		applog.FieldRowRef, ref)

	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="message success">Transaction added!</div>`))
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="message error">Invalid request format</div>`))
		return
	}

	category, err := core.ParseCategory(r.Form.Get("category"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="message error">Invalid category</div>`))
		return
	}

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="message error">Invalid amount</div>`))
		return
	}

	budget := core.Budget{Category: category, Limit: core.Money{Cents: cents}}
	if err := s.budgetWriter.SetBudget(r.Context(), budget); err != nil {
		slog.ErrorContext(r.Context(), "Failed to set budget",
			applog.FieldError, err,
			applog.FieldCategory, budget.Category,
			applog.FieldLimitCents, budget.Limit.Cents)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="message error">Error saving budget</div>`))
		return
	}

	atomic.AddInt64(&s.metrics.budgetsSet, 1)
	slog.InfoContext(r.Context(), "Budget set",
		applog.FieldCategory, budget.Category,
		applog.FieldLimitCents, budget.Limit.Cents)

	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="message success">Budget set!</div>`))
}
