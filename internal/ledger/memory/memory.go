// Package memory implements the ledger store as session-scoped in-memory
// state. Nothing is written to disk; the ledger lives and dies with the
// process.
package memory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/export"
)

type Store struct {
	mu      sync.Mutex
	txs     []core.Transaction
	budgets map[core.Category]core.Money
}

func New() *Store {
	return &Store{budgets: make(map[core.Category]core.Money)}
}

// NewFromCSV builds a store pre-loaded with the transactions of a CSV file
// in the export format. Useful for demos; the file is never written back.
func NewFromCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	txs, err := export.ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	s := New()
	s.txs = txs
	return s, nil
}

// AppendTransaction appends to the ordered transaction sequence and returns
// a synthetic row reference.
func (s *Store) AppendTransaction(_ context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, t)
	return uuid.NewString(), nil
}

// SetBudget replaces any existing budget for the category.
func (s *Store) SetBudget(_ context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets[b.Category] = b.Limit
	return nil
}

// Transactions returns a copy of the transaction sequence in insertion order.
func (s *Store) Transactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, nil
}

// Budgets returns the current budgets in the fixed category order.
func (s *Store) Budgets(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Budget, 0, len(s.budgets))
	for _, c := range core.Categories() {
		if limit, ok := s.budgets[c]; ok {
			out = append(out, core.Budget{Category: c, Limit: limit})
		}
	}
	return out, nil
}

// Counts reports the number of transactions and budgets currently held.
func (s *Store) Counts() (transactions, budgets int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txs), len(s.budgets)
}
