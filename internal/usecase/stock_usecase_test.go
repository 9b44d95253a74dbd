package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/bizbooks/internal/domain"
)

func stock(n int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(n), Valid: true}
}

func stockFixture() (*fakeInventoryRepo, *fakeTransactionRepo) {
	inventory := &fakeInventoryRepo{
		items: []domain.InventoryItem{
			{ID: "i1", Name: "Hex Bolt M8", Stock: stock(5), MinimumStockLevel: decimal.NewFromInt(10), SalesRate: decimal.NewFromInt(2)},
			{ID: "i2", Name: "Washer", Stock: stock(0), MinimumStockLevel: decimal.NewFromInt(10), SalesRate: decimal.NewFromInt(1)},
			{ID: "i3", Name: "Anchor", Stock: stock(-3), SalesRate: decimal.NewFromInt(25)},
		},
	}
	transactions := &fakeTransactionRepo{
		sales: []domain.TransactionRecord{
			{Number: "INV-1", InvoiceDate: date("2024-01-05"), Items: []domain.LineItem{{ProductID: "i1", Quantity: decimal.NewFromInt(2)}}},
			{Number: "INV-2", InvoiceDate: date("2024-02-01"), Items: []domain.LineItem{{ProductName: "Hex Bolt M8", Quantity: decimal.NewFromInt(4)}}},
		},
		purchases: []domain.TransactionRecord{
			{Number: "PO-1", PODate: date("2024-01-20"), Products: []domain.LineItem{{ProductID: "i1", Quantity: decimal.NewFromInt(50)}}},
		},
	}
	return inventory, transactions
}

func TestStockUseCase_BuildReport(t *testing.T) {
	inventory, transactions := stockFixture()
	uc := NewStockUseCase(inventory, transactions)

	rows, err := uc.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	bolt := rows[0]
	if bolt.Status != domain.StockLowStock {
		t.Errorf("bolt status = %q, want low", bolt.Status)
	}
	if bolt.LastSale == nil || bolt.LastSale.Number != "INV-2" {
		t.Errorf("bolt last sale = %+v, want INV-2", bolt.LastSale)
	}
	if bolt.LastPurchase == nil || bolt.LastPurchase.Number != "PO-1" {
		t.Errorf("bolt last purchase = %+v, want PO-1", bolt.LastPurchase)
	}
	if !bolt.Value.Equal(decimal.NewFromInt(10)) {
		t.Errorf("bolt value = %s, want 10", bolt.Value)
	}

	washer := rows[1]
	if washer.Status != domain.StockInStock {
		t.Errorf("zero-stock washer status = %q, want in stock", washer.Status)
	}
	if washer.LastSale != nil {
		t.Errorf("washer last sale = %+v, want none", washer.LastSale)
	}

	anchor := rows[2]
	if anchor.Status != domain.StockNegativeStock {
		t.Errorf("anchor status = %q, want negative", anchor.Status)
	}
	if !anchor.Value.Equal(decimal.NewFromInt(-75)) {
		t.Errorf("anchor value = %s, want -75", anchor.Value)
	}
}

func TestStockUseCase_BuildSummary(t *testing.T) {
	inventory, transactions := stockFixture()
	uc := NewStockUseCase(inventory, transactions)

	summary, err := uc.BuildSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", summary.TotalItems)
	}
	if summary.InStock != 1 || summary.LowStock != 1 || summary.NegativeStock != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", summary.InStock, summary.LowStock, summary.NegativeStock)
	}
	if got := summary.InStock + summary.LowStock + summary.NegativeStock; got != summary.TotalItems {
		t.Errorf("status counts sum to %d, want %d", got, summary.TotalItems)
	}
	// 5*2 + 0*1 + (-3)*25 = -65
	if !summary.TotalValuation.Equal(decimal.NewFromInt(-65)) {
		t.Errorf("TotalValuation = %s, want -65", summary.TotalValuation)
	}
}

func TestStockUseCase_RepoErrorSurfaces(t *testing.T) {
	inventory, transactions := stockFixture()
	inventory.err = errors.New("db down")
	uc := NewStockUseCase(inventory, transactions)

	if _, err := uc.BuildReport(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if _, err := uc.BuildSummary(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

type fakeInventoryRepo struct {
	items []domain.InventoryItem
	err   error
}

func (f *fakeInventoryRepo) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return f.items, f.err
}

type fakeTransactionRepo struct {
	sales     []domain.TransactionRecord
	purchases []domain.TransactionRecord
	err       error
}

func (f *fakeTransactionRepo) ListSales(ctx context.Context) ([]domain.TransactionRecord, error) {
	return f.sales, f.err
}

func (f *fakeTransactionRepo) ListPurchases(ctx context.Context) ([]domain.TransactionRecord, error) {
	return f.purchases, f.err
}
