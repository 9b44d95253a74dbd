package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bizbooks/internal/domain"
)

// SaleRepository implements usecase.SaleRepository.
type SaleRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(pool *pgxpool.Pool, retrier *Retrier) *SaleRepository {
	return &SaleRepository{pool: pool, retrier: retrier}
}

// List loads all sales invoices.
func (r *SaleRepository) List(ctx context.Context) ([]domain.SaleInvoice, error) {
	var sales []domain.SaleInvoice
	err := r.retrier.Retry(ctx, func() error {
		var err error
		sales, err = r.list(ctx)
		return err
	})
	return sales, err
}

func (r *SaleRepository) list(ctx context.Context) ([]domain.SaleInvoice, error) {
	query := `
		SELECT id, number, invoice_date, customer_id, customer_name, total
		FROM sales_invoices
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales invoices: %w", err)
	}
	defer rows.Close()

	var sales []domain.SaleInvoice
	for rows.Next() {
		var (
			s          domain.SaleInvoice
			date       pgtype.Timestamptz
			customerID pgtype.Text
		)
		if err := rows.Scan(&s.ID, &s.Number, &date, &customerID, &s.CustomerName, &s.Total); err != nil {
			return nil, fmt.Errorf("scan sales invoice: %w", err)
		}
		s.Date = tsToTime(date)
		s.CustomerID = textToString(customerID)
		sales = append(sales, s)
	}

	return sales, rows.Err()
}
