// Package export encodes the transaction ledger as CSV and decodes it back.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fintrack/internal/core"
)

// Filename is the suggested name for downloaded exports.
const Filename = "transactions.csv"

var header = []string{"Date", "Description", "Category", "Amount", "Type"}

// WriteTransactions writes the transactions as UTF-8 CSV, one row per
// transaction in the order given. Amounts are rendered exactly from cents,
// so an export re-parses without precision loss.
func WriteTransactions(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, t := range txs {
		row := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			string(t.Category),
			core.FormatCents(t.Amount.Cents),
			string(t.Kind),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTransactions parses a CSV stream in the export format. The header row
// is required and every record is validated.
func ReadTransactions(r io.Reader) ([]core.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing csv header")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, name := range header {
		if first[i] != name {
			return nil, fmt.Errorf("unexpected csv header %q, want %q", first[i], name)
		}
	}

	var txs []core.Transaction
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		t, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func parseRecord(rec []string) (core.Transaction, error) {
	date, err := core.ParseDate(rec[0])
	if err != nil {
		return core.Transaction{}, err
	}
	category, err := core.ParseCategory(rec[2])
	if err != nil {
		return core.Transaction{}, err
	}
	cents, err := core.ParseDecimalToCents(rec[3])
	if err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %q", core.ErrInvalidAmount, rec[3])
	}
	kind, err := core.ParseKind(rec[4])
	if err != nil {
		return core.Transaction{}, err
	}
	t := core.Transaction{
		Date:        date,
		Description: rec[1],
		Category:    category,
		Amount:      core.Money{Cents: cents},
		Kind:        kind,
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}
