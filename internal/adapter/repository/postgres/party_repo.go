package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bizbooks/internal/domain"
)

// PartyRepository implements usecase.PartyRepository.
type PartyRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool, retrier *Retrier) *PartyRepository {
	return &PartyRepository{pool: pool, retrier: retrier}
}

// List loads all customers and suppliers ordered by name.
func (r *PartyRepository) List(ctx context.Context) ([]domain.Party, error) {
	var parties []domain.Party
	err := r.retrier.Retry(ctx, func() error {
		var err error
		parties, err = r.list(ctx)
		return err
	})
	return parties, err
}

func (r *PartyRepository) list(ctx context.Context) ([]domain.Party, error) {
	query := `
		SELECT id, kind, name, opening_balance
		FROM parties
		ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var parties []domain.Party
	for rows.Next() {
		var p domain.Party
		if err := rows.Scan(&p.ID, &p.Kind, &p.Name, &p.OpeningBalance); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		parties = append(parties, p)
	}

	return parties, rows.Err()
}

// GetByID retrieves a party by id, or nil when it does not exist.
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	query := `
		SELECT id, kind, name, opening_balance
		FROM parties
		WHERE id = $1`

	var p domain.Party
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Kind, &p.Name, &p.OpeningBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}

	return &p, nil
}
