package domain

import "github.com/shopspring/decimal"

// StockStatus is the derived health state of an inventory item. It is
// never stored; it is recomputed from the current stock and the
// minimum level on every query.
type StockStatus string

const (
	StockInStock       StockStatus = "in_stock"
	StockLowStock      StockStatus = "low_stock"
	StockNegativeStock StockStatus = "negative_stock"
)

// InventoryItem is a stocked product. Stock is the running quantity
// and may go negative; OpeningStock is the quantity at creation. Both
// are nullable because items created before stock tracking carry only
// one of them.
type InventoryItem struct {
	ID                string
	Name              string
	Category          string
	OpeningStock      decimal.NullDecimal
	Stock             decimal.NullDecimal
	MinimumStockLevel decimal.Decimal
	SalesRate         decimal.Decimal
}

// CurrentStock resolves the effective quantity: the running stock once
// present, else the opening stock, else zero. This is the single place
// the field-precedence policy lives.
func (i InventoryItem) CurrentStock() decimal.Decimal {
	if i.Stock.Valid {
		return i.Stock.Decimal
	}
	if i.OpeningStock.Valid {
		return i.OpeningStock.Decimal
	}
	return decimal.Zero
}

// Status classifies the item. Negative stock wins unconditionally.
// A stock of exactly zero is never flagged low, even with a minimum
// level set; only a positive quantity under the minimum is low. That
// asymmetry is deliberate and must not be "fixed".
func (i InventoryItem) Status() StockStatus {
	current := i.CurrentStock()
	if current.IsNegative() {
		return StockNegativeStock
	}
	if i.MinimumStockLevel.IsPositive() && current.IsPositive() && current.LessThan(i.MinimumStockLevel) {
		return StockLowStock
	}
	return StockInStock
}

// Value is the item's contribution to the stock valuation. Negative
// stock contributes a negative term; there is no floor at zero.
func (i InventoryItem) Value() decimal.Decimal {
	return i.CurrentStock().Mul(i.SalesRate)
}

// StockValuation sums current stock times sales rate over all items.
func StockValuation(items []InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value())
	}
	return total
}
