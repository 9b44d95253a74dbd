package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bizbooks/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository. It
// reassembles invoices and their lines into transaction records for
// the last-activity lookup.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool, retrier *Retrier) *TransactionRepository {
	return &TransactionRepository{pool: pool, retrier: retrier}
}

// ListSales loads the sales history with line items.
func (r *TransactionRepository) ListSales(ctx context.Context) ([]domain.TransactionRecord, error) {
	query := `
		SELECT id, number, invoice_date, NULL::timestamptz, created_at
		FROM sales_invoices
		ORDER BY created_at, id`

	var records []domain.TransactionRecord
	err := r.retrier.Retry(ctx, func() error {
		var err error
		records, err = r.listHistory(ctx, "sale", query)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list sales history: %w", err)
	}

	return records, nil
}

// ListPurchases loads the purchase history with line items.
func (r *TransactionRepository) ListPurchases(ctx context.Context) ([]domain.TransactionRecord, error) {
	query := `
		SELECT id, number, NULL::timestamptz, po_date, created_at
		FROM purchase_invoices
		ORDER BY created_at, id`

	var records []domain.TransactionRecord
	err := r.retrier.Retry(ctx, func() error {
		var err error
		records, err = r.listHistory(ctx, "purchase", query)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list purchase history: %w", err)
	}

	return records, nil
}

func (r *TransactionRepository) listHistory(ctx context.Context, kind, query string) ([]domain.TransactionRecord, error) {
	records, index, err := r.loadRecords(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := r.attachLines(ctx, kind, records, index); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *TransactionRepository) loadRecords(ctx context.Context, query string) ([]domain.TransactionRecord, map[string]int, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	index := make(map[string]int)
	for rows.Next() {
		var (
			rec                 domain.TransactionRecord
			invoiceDate, poDate pgtype.Timestamptz
			createdAt           pgtype.Timestamptz
		)
		if err := rows.Scan(&rec.ID, &rec.Number, &invoiceDate, &poDate, &createdAt); err != nil {
			return nil, nil, err
		}
		rec.InvoiceDate = tsToTime(invoiceDate)
		rec.PODate = tsToTime(poDate)
		rec.CreatedAt = tsToTime(createdAt)
		index[rec.ID] = len(records)
		records = append(records, rec)
	}

	return records, index, rows.Err()
}

func (r *TransactionRepository) attachLines(ctx context.Context, kind string, records []domain.TransactionRecord, index map[string]int) error {
	query := `
		SELECT invoice_id, line_group, line_ref, product_id, product_name, sku, quantity, rate
		FROM invoice_lines
		WHERE invoice_kind = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, kind)
	if err != nil {
		return fmt.Errorf("list %s lines: %w", kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			invoiceID, group string
			line             domain.LineItem
		)
		if err := rows.Scan(&invoiceID, &group, &line.ID, &line.ProductID, &line.ProductName, &line.SKU, &line.Quantity, &line.Rate); err != nil {
			return fmt.Errorf("scan %s line: %w", kind, err)
		}
		i, ok := index[invoiceID]
		if !ok {
			continue
		}
		if group == "items" {
			records[i].Items = append(records[i].Items, line)
		} else {
			records[i].Products = append(records[i].Products, line)
		}
	}

	return rows.Err()
}
