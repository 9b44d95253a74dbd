package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single normalized financial movement derived from a
// source document. Balance is only meaningful after WithBalances has
// run over a filtered sequence; it is not a persistent property.
type LedgerEntry struct {
	ID               string
	Date             time.Time
	DocType          DocumentType
	DocNumber        string
	Particulars      string
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	Balance          decimal.Decimal
	CounterpartyID   string
	CounterpartyName string
}

// BalanceSide returns the display convention for a running balance:
// "CR" for positive (owed to the business), "DR" for negative.
func BalanceSide(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return "DR"
	}
	return "CR"
}
