package usecase

import (
	"context"
	"time"

	"github.com/iho/bizbooks/internal/domain"
)

// SaleRepository defines data access for sale invoices.
type SaleRepository interface {
	List(ctx context.Context) ([]domain.SaleInvoice, error)
}

// PurchaseRepository defines data access for purchase invoices.
type PurchaseRepository interface {
	List(ctx context.Context) ([]domain.PurchaseInvoice, error)
}

// VoucherRepository defines data access for receipt and payment vouchers.
type VoucherRepository interface {
	ListReceipts(ctx context.Context) ([]domain.ReceiptVoucher, error)
	ListPayments(ctx context.Context) ([]domain.PaymentVoucher, error)
}

// PartyRepository defines data access for customers and suppliers.
type PartyRepository interface {
	List(ctx context.Context) ([]domain.Party, error)
	GetByID(ctx context.Context, id string) (*domain.Party, error)
}

// InventoryRepository defines data access for inventory items.
type InventoryRepository interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
}

// TransactionRepository defines data access for the historical
// transaction records the last-activity matcher scans.
type TransactionRepository interface {
	ListSales(ctx context.Context) ([]domain.TransactionRecord, error)
	ListPurchases(ctx context.Context) ([]domain.TransactionRecord, error)
}

// Cache defines caching operations for computed statements.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
