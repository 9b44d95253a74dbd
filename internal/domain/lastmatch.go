package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind selects which side of the transaction history the
// last-activity lookup scans.
type TransactionKind string

const (
	TransactionSale     TransactionKind = "sale"
	TransactionPurchase TransactionKind = "purchase"
)

// LineItem is one line of a historical transaction. The identifier
// fields mirror the loosely-typed records the data layer holds; any of
// them may be empty.
type LineItem struct {
	ID          string
	ProductID   string
	ProductName string
	SKU         string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// MatchesItem reports whether the line refers to the inventory item.
// Identifier fields are tried against the item id first; the name
// match is an independent fallback, so a line can match purely on name
// even when its ids differ or are absent.
func (l LineItem) MatchesItem(item InventoryItem) bool {
	for _, id := range []string{l.ID, l.ProductID, l.ProductName, l.SKU} {
		if id != "" && id == item.ID {
			return true
		}
	}
	return l.ProductName != "" && l.ProductName == item.Name
}

// TransactionRecord is a historical sale or purchase with its line
// items. The four date fields mirror the heterogeneous records in the
// data layer; zero values mean the field is absent.
type TransactionRecord struct {
	ID          string
	Number      string
	InvoiceDate time.Time
	Date        time.Time
	PODate      time.Time
	CreatedAt   time.Time
	Items       []LineItem
	Products    []LineItem
}

// EffectiveDate resolves the transaction date: invoice date, then
// date, then purchase-order date, then creation time.
func (t TransactionRecord) EffectiveDate() time.Time {
	for _, d := range []time.Time{t.InvoiceDate, t.Date, t.PODate, t.CreatedAt} {
		if !d.IsZero() {
			return d
		}
	}
	return time.Time{}
}

// Lines returns the line items relevant to the given kind. Sales use
// the items list, falling back to products when items is absent;
// purchases always use products.
func (t TransactionRecord) Lines(kind TransactionKind) []LineItem {
	if kind == TransactionSale {
		if t.Items != nil {
			return t.Items
		}
		return t.Products
	}
	return t.Products
}

// LineMatch is a matched line together with its transaction's date and
// number.
type LineMatch struct {
	Line   LineItem
	Date   time.Time
	Number string
}

// LastMatch finds the most recent line item across the transaction
// history that refers to the inventory item, or nil when none does.
// Among equal latest dates the last one seen in iteration order wins.
func LastMatch(item InventoryItem, transactions []TransactionRecord, kind TransactionKind) *LineMatch {
	var best *LineMatch
	for _, tx := range transactions {
		date := tx.EffectiveDate()
		for _, line := range tx.Lines(kind) {
			if !line.MatchesItem(item) {
				continue
			}
			if best == nil || !date.Before(best.Date) {
				best = &LineMatch{Line: line, Date: date, Number: tx.Number}
			}
		}
	}
	return best
}
