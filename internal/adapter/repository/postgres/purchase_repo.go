package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bizbooks/internal/domain"
)

// PurchaseRepository implements usecase.PurchaseRepository.
type PurchaseRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository(pool *pgxpool.Pool, retrier *Retrier) *PurchaseRepository {
	return &PurchaseRepository{pool: pool, retrier: retrier}
}

// List loads all purchase invoices.
func (r *PurchaseRepository) List(ctx context.Context) ([]domain.PurchaseInvoice, error) {
	var purchases []domain.PurchaseInvoice
	err := r.retrier.Retry(ctx, func() error {
		var err error
		purchases, err = r.list(ctx)
		return err
	})
	return purchases, err
}

func (r *PurchaseRepository) list(ctx context.Context) ([]domain.PurchaseInvoice, error) {
	query := `
		SELECT id, number, po_date, supplier_id, supplier_name, total
		FROM purchase_invoices
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list purchase invoices: %w", err)
	}
	defer rows.Close()

	var purchases []domain.PurchaseInvoice
	for rows.Next() {
		var (
			p          domain.PurchaseInvoice
			date       pgtype.Timestamptz
			supplierID pgtype.Text
		)
		if err := rows.Scan(&p.ID, &p.Number, &date, &supplierID, &p.SupplierName, &p.Total); err != nil {
			return nil, fmt.Errorf("scan purchase invoice: %w", err)
		}
		p.Date = tsToTime(date)
		p.SupplierID = textToString(supplierID)
		purchases = append(purchases, p)
	}

	return purchases, rows.Err()
}
