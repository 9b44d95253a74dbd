package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bizbooks/internal/domain"
)

// InventoryRepository implements usecase.InventoryRepository.
type InventoryRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewInventoryRepository creates a new InventoryRepository.
func NewInventoryRepository(pool *pgxpool.Pool, retrier *Retrier) *InventoryRepository {
	return &InventoryRepository{pool: pool, retrier: retrier}
}

// List loads all inventory items ordered by name. The opening_stock
// and stock columns are nullable and scan into NullDecimal so the
// domain can apply its field-precedence rules.
func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.retrier.Retry(ctx, func() error {
		var err error
		items, err = r.list(ctx)
		return err
	})
	return items, err
}

func (r *InventoryRepository) list(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
		SELECT id, name, category, opening_stock, stock, minimum_stock_level, sales_rate
		FROM inventory_items
		ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category,
			&item.OpeningStock, &item.Stock,
			&item.MinimumStockLevel, &item.SalesRate,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
