package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bizbooks/internal/domain"
)

// VoucherRepository implements usecase.VoucherRepository.
type VoucherRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(pool *pgxpool.Pool, retrier *Retrier) *VoucherRepository {
	return &VoucherRepository{pool: pool, retrier: retrier}
}

// ListReceipts loads all receipt vouchers.
func (r *VoucherRepository) ListReceipts(ctx context.Context) ([]domain.ReceiptVoucher, error) {
	var receipts []domain.ReceiptVoucher
	err := r.retrier.Retry(ctx, func() error {
		var err error
		receipts, err = r.listReceipts(ctx)
		return err
	})
	return receipts, err
}

func (r *VoucherRepository) listReceipts(ctx context.Context) ([]domain.ReceiptVoucher, error) {
	query := `
		SELECT id, number, voucher_date, received_from, amount
		FROM receipt_vouchers
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list receipt vouchers: %w", err)
	}
	defer rows.Close()

	var receipts []domain.ReceiptVoucher
	for rows.Next() {
		var (
			v    domain.ReceiptVoucher
			date pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Number, &date, &v.ReceivedFrom, &v.Amount); err != nil {
			return nil, fmt.Errorf("scan receipt voucher: %w", err)
		}
		v.Date = tsToTime(date)
		receipts = append(receipts, v)
	}

	return receipts, rows.Err()
}

// ListPayments loads all payment vouchers.
func (r *VoucherRepository) ListPayments(ctx context.Context) ([]domain.PaymentVoucher, error) {
	var payments []domain.PaymentVoucher
	err := r.retrier.Retry(ctx, func() error {
		var err error
		payments, err = r.listPayments(ctx)
		return err
	})
	return payments, err
}

func (r *VoucherRepository) listPayments(ctx context.Context) ([]domain.PaymentVoucher, error) {
	query := `
		SELECT id, number, voucher_date, paid_to, amount
		FROM payment_vouchers
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payment vouchers: %w", err)
	}
	defer rows.Close()

	var payments []domain.PaymentVoucher
	for rows.Next() {
		var (
			v    domain.PaymentVoucher
			date pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Number, &date, &v.PaidTo, &v.Amount); err != nil {
			return nil, fmt.Errorf("scan payment voucher: %w", err)
		}
		v.Date = tsToTime(date)
		payments = append(payments, v)
	}

	return payments, rows.Err()
}
