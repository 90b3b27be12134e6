package core

import (
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Fatalf("%q expected %q, got %q (err=%v)", c, c, got, err)
		}
	}
	for _, bad := range []string{"", "food", "Groceries", "FOOD"} {
		if _, err := ParseCategory(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"Income", "Expense"} {
		if _, err := ParseKind(s); err != nil {
			t.Fatalf("%q expected ok, got %v", s, err)
		}
	}
	for _, bad := range []string{"", "income", "Transfer"} {
		if _, err := ParseKind(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
		t.Fatalf("unexpected date %v", d)
	}
	if d.MonthKey() != "2024-03" {
		t.Fatalf("month key %q", d.MonthKey())
	}
	for _, bad := range []string{"", "15/03/2024", "2024-13-01", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:        NewDate(2024, 1, 5),
		Description: "groceries",
		Category:    CategoryFood,
		Amount:      Money{Cents: 5000},
		Kind:        KindExpense,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Empty description is allowed.
	empty := good
	empty.Description = ""
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty description should validate, got %v", err)
	}

	bads := []Transaction{
		{Date: Date{}, Category: CategoryFood, Amount: Money{Cents: 1}, Kind: KindExpense},
		{Date: NewDate(2024, 1, 5), Category: "Misc", Amount: Money{Cents: 1}, Kind: KindExpense},
		{Date: NewDate(2024, 1, 5), Category: CategoryFood, Amount: Money{Cents: 0}, Kind: KindExpense},
		{Date: NewDate(2024, 1, 5), Category: CategoryFood, Amount: Money{Cents: -100}, Kind: KindExpense},
		{Date: NewDate(2024, 1, 5), Category: CategoryFood, Amount: Money{Cents: 1}, Kind: "Transfer"},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetValidate(t *testing.T) {
	if err := (Budget{Category: CategoryRent, Limit: Money{Cents: 100}}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Budget{Category: "Nope", Limit: Money{Cents: 100}}).Validate(); err == nil {
		t.Fatalf("expected category error")
	}
	if err := (Budget{Category: CategoryRent, Limit: Money{}}).Validate(); err == nil {
		t.Fatalf("expected limit error")
	}
}
