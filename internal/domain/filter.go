package domain

import (
	"strings"
	"time"
)

// StatementScope restricts which document types participate in a
// statement: all entries, the customer side (sales and receipts), or
// the supplier side (purchases and payments).
type StatementScope string

const (
	ScopeAll       StatementScope = "all"
	ScopeCustomers StatementScope = "customers"
	ScopeSuppliers StatementScope = "suppliers"
)

// ParseStatementScope parses a scope string. Empty means all.
func ParseStatementScope(s string) (StatementScope, bool) {
	switch StatementScope(s) {
	case "":
		return ScopeAll, true
	case ScopeAll, ScopeCustomers, ScopeSuppliers:
		return StatementScope(s), true
	}
	return "", false
}

// StatementCriteria is the full set of statement filters. Zero values
// mean "no restriction" for every field except Scope, which defaults
// to ScopeAll.
type StatementCriteria struct {
	Scope StatementScope

	// PartyName is the resolved display name of the selected
	// counterparty. Matching is by exact, case-sensitive name:
	// receipts and payments carry no counterparty id, so a name is
	// the only join available. A customer and a supplier sharing a
	// name will have their entries merged.
	PartyName string

	DocTypes []DocumentType
	From     *time.Time
	To       *time.Time
	Search   string
}

// FilterEntries applies the statement criteria in a fixed order:
// scope, counterparty, document type, date range, free text. Each
// stage narrows the previous one; scope must run before the name match
// so a customers-only statement never picks up supplier entries.
func FilterEntries(entries []LedgerEntry, c StatementCriteria) []LedgerEntry {
	out := make([]LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if !matchesScope(e, c.Scope) {
			continue
		}
		if c.PartyName != "" && e.CounterpartyName != c.PartyName {
			continue
		}
		if !matchesDocTypes(e, c.DocTypes) {
			continue
		}
		if !matchesDateRange(e, c.From, c.To) {
			continue
		}
		if !matchesSearch(e, c.Search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesScope(e LedgerEntry, scope StatementScope) bool {
	switch scope {
	case ScopeCustomers:
		return e.DocType == DocTypeSale || e.DocType == DocTypeReceipt
	case ScopeSuppliers:
		return e.DocType == DocTypePurchase || e.DocType == DocTypePayment
	default:
		return true
	}
}

func matchesDocTypes(e LedgerEntry, types []DocumentType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if e.DocType == t {
			return true
		}
	}
	return false
}

func matchesDateRange(e LedgerEntry, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	// Entries without a usable date never match an active range.
	if e.Date.IsZero() {
		return false
	}
	if from != nil && e.Date.Before(*from) {
		return false
	}
	if to != nil && e.Date.After(EndOfDay(*to)) {
		return false
	}
	return true
}

func matchesSearch(e LedgerEntry, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{e.DocNumber, e.Particulars, e.CounterpartyName} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// EndOfDay pushes a range bound to 23:59:59.999 so that a same-day
// upper bound includes the whole day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}
