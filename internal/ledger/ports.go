package ledger

import (
	"context"

	"fintrack/internal/core"
)

// Ports for the ledger store. The HTTP layer depends on these interfaces
// rather than a concrete store.
type (
	TransactionAppender interface {
		// AppendTransaction adds a transaction to the ledger and returns a
		// row reference for the new entry.
		AppendTransaction(ctx context.Context, t core.Transaction) (rowRef string, err error)
	}

	BudgetSetter interface {
		// SetBudget upserts the budget for its category: any existing limit
		// is replaced, last write wins.
		SetBudget(ctx context.Context, b core.Budget) error
	}

	// Reader provides read-only snapshots of the ledger contents.
	Reader interface {
		// Transactions returns all transactions in insertion order.
		Transactions(ctx context.Context) ([]core.Transaction, error)

		// Budgets returns the current budgets, one per category at most,
		// in the fixed category order.
		Budgets(ctx context.Context) ([]core.Budget, error)
	}
)
