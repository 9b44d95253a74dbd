package domain

import "github.com/shopspring/decimal"

// PartyKind distinguishes customers from suppliers.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartySupplier PartyKind = "supplier"
)

// Party is a customer or supplier. Read-only reference data: the
// opening balance seeds the running balance when a statement is
// filtered to this party. Positive opening balances follow the CR
// convention.
type Party struct {
	ID             string
	Kind           PartyKind
	Name           string
	OpeningBalance decimal.Decimal
}
