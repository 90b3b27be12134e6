package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.metrics.startTime).String(),
	})
}

// handleReady reports readiness: templates parsed and the store answering.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]string)

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	if _, err := s.reader.Transactions(r.Context()); err != nil {
		checks["ledger"] = fmt.Sprintf("failed: %v", err)
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["ledger"] = "ok"
	}

	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

// handleMetrics exposes counters in plain text.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	var txCount, budgetCount int
	if txs, err := s.reader.Transactions(r.Context()); err == nil {
		txCount = len(txs)
	}
	if budgets, err := s.reader.Budgets(r.Context()); err == nil {
		budgetCount = len(budgets)
	}

	fmt.Fprintf(w, "# HELP http_requests_total Total number of HTTP requests\n")
	fmt.Fprintf(w, "# TYPE http_requests_total counter\n")
	fmt.Fprintf(w, "http_requests_total %d\n\n", atomic.LoadInt64(&s.metrics.totalRequests))

	fmt.Fprintf(w, "# HELP transactions_created_total Total number of transactions recorded\n")
	fmt.Fprintf(w, "# TYPE transactions_created_total counter\n")
	fmt.Fprintf(w, "transactions_created_total %d\n\n", atomic.LoadInt64(&s.metrics.transactionsCreated))

	fmt.Fprintf(w, "# HELP budgets_set_total Total number of budget upserts\n")
	fmt.Fprintf(w, "# TYPE budgets_set_total counter\n")
	fmt.Fprintf(w, "budgets_set_total %d\n\n", atomic.LoadInt64(&s.metrics.budgetsSet))

	fmt.Fprintf(w, "# HELP ledger_entries Current ledger contents\n")
	fmt.Fprintf(w, "# TYPE ledger_entries gauge\n")
	fmt.Fprintf(w, "ledger_entries{type=\"transactions\"} %d\n", txCount)
	fmt.Fprintf(w, "ledger_entries{type=\"budgets\"} %d\n\n", budgetCount)

	fmt.Fprintf(w, "# HELP rate_limit_clients Currently tracked rate limit clients\n")
	fmt.Fprintf(w, "# TYPE rate_limit_clients gauge\n")
	fmt.Fprintf(w, "rate_limit_clients %d\n\n", s.rateLimiter.activeClients())

	fmt.Fprintf(w, "# HELP uptime_seconds Application uptime in seconds\n")
	fmt.Fprintf(w, "# TYPE uptime_seconds gauge\n")
	fmt.Fprintf(w, "uptime_seconds %.0f\n", time.Since(s.metrics.startTime).Seconds())
}
