package domain

import "github.com/shopspring/decimal"

// StatementTotals summarizes a balanced statement.
type StatementTotals struct {
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// WithBalances folds a running balance over an already-filtered,
// date-sorted sequence. The seed is the selected counterparty's
// opening balance, or zero when no counterparty filter is active. The
// input is not mutated; each returned entry is a copy carrying its
// computed balance. The closing balance is the last entry's balance,
// or the seed when the sequence is empty.
func WithBalances(entries []LedgerEntry, seed decimal.Decimal) ([]LedgerEntry, StatementTotals) {
	out := make([]LedgerEntry, len(entries))
	totals := StatementTotals{
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
		ClosingBalance: seed,
	}

	running := seed
	for i, e := range entries {
		running = running.Add(e.Debit).Sub(e.Credit)
		e.Balance = running
		out[i] = e

		totals.TotalDebit = totals.TotalDebit.Add(e.Debit)
		totals.TotalCredit = totals.TotalCredit.Add(e.Credit)
	}
	totals.ClosingBalance = running

	return out, totals
}
