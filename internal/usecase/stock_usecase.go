package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/bizbooks/internal/domain"
)

// StockUseCase derives stock-health reports: per-item status and
// valuation plus the latest sale and purchase touching each item.
type StockUseCase struct {
	inventoryRepo   InventoryRepository
	transactionRepo TransactionRepository
}

// NewStockUseCase creates a new StockUseCase.
func NewStockUseCase(inventoryRepo InventoryRepository, transactionRepo TransactionRepository) *StockUseCase {
	return &StockUseCase{
		inventoryRepo:   inventoryRepo,
		transactionRepo: transactionRepo,
	}
}

// StockReportRow is one inventory item with its derived state.
type StockReportRow struct {
	Item         domain.InventoryItem
	Status       domain.StockStatus
	CurrentStock decimal.Decimal
	Value        decimal.Decimal
	LastSale     *domain.LineMatch
	LastPurchase *domain.LineMatch
}

// StockSummary aggregates the whole inventory.
type StockSummary struct {
	TotalItems     int
	InStock        int
	LowStock       int
	NegativeStock  int
	TotalValuation decimal.Decimal
}

// BuildReport classifies and values every inventory item and attaches
// its last sale and last purchase from the transaction history.
func (uc *StockUseCase) BuildReport(ctx context.Context) ([]StockReportRow, error) {
	items, err := uc.inventoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	sales, err := uc.transactionRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sale history: %w", err)
	}
	purchases, err := uc.transactionRepo.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("load purchase history: %w", err)
	}

	rows := make([]StockReportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, StockReportRow{
			Item:         item,
			Status:       item.Status(),
			CurrentStock: item.CurrentStock(),
			Value:        item.Value(),
			LastSale:     domain.LastMatch(item, sales, domain.TransactionSale),
			LastPurchase: domain.LastMatch(item, purchases, domain.TransactionPurchase),
		})
	}

	return rows, nil
}

// BuildSummary counts items per status and totals the valuation.
func (uc *StockUseCase) BuildSummary(ctx context.Context) (*StockSummary, error) {
	items, err := uc.inventoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	summary := &StockSummary{
		TotalItems:     len(items),
		TotalValuation: domain.StockValuation(items),
	}
	for _, item := range items {
		switch item.Status() {
		case domain.StockLowStock:
			summary.LowStock++
		case domain.StockNegativeStock:
			summary.NegativeStock++
		default:
			summary.InStock++
		}
	}

	return summary, nil
}
