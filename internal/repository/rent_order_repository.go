package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// RentOrderRepository persists gateway order bookkeeping.
type RentOrderRepository interface {
	Create(ctx context.Context, order *domain.RentOrder) error
	GetByProviderOrderID(ctx context.Context, providerOrderID string) (*domain.RentOrder, error)
	// MarkPaid transitions a PENDING order to PAID. It returns pgx.ErrNoRows
	// when the order is missing or already settled, which callers use to keep
	// the verify callback and the webhook from both recording a payment.
	MarkPaid(ctx context.Context, providerOrderID string) error
	MarkFailed(ctx context.Context, providerOrderID string) error
}

type rentOrderRepository struct {
	pool *pgxpool.Pool
}

// NewRentOrderRepository instantiates repository.
func NewRentOrderRepository(pool *pgxpool.Pool) RentOrderRepository {
	return &rentOrderRepository{pool: pool}
}

func (r *rentOrderRepository) Create(ctx context.Context, order *domain.RentOrder) error {
	const query = `
        INSERT INTO rent_orders (lease_id, month, year, amount, provider_order_id, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		order.LeaseID,
		order.Month,
		order.Year,
		order.Amount,
		order.ProviderOrderID,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *rentOrderRepository) GetByProviderOrderID(ctx context.Context, providerOrderID string) (*domain.RentOrder, error) {
	const query = `
        SELECT id, lease_id, month, year, amount, provider_order_id, status, created_at, updated_at
        FROM rent_orders WHERE provider_order_id=$1`

	var order domain.RentOrder
	if err := r.pool.QueryRow(ctx, query, providerOrderID).Scan(
		&order.ID,
		&order.LeaseID,
		&order.Month,
		&order.Year,
		&order.Amount,
		&order.ProviderOrderID,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *rentOrderRepository) MarkPaid(ctx context.Context, providerOrderID string) error {
	return r.markStatus(ctx, providerOrderID, domain.RentOrderStatusPaid)
}

func (r *rentOrderRepository) MarkFailed(ctx context.Context, providerOrderID string) error {
	return r.markStatus(ctx, providerOrderID, domain.RentOrderStatusFailed)
}

func (r *rentOrderRepository) markStatus(ctx context.Context, providerOrderID string, status domain.RentOrderStatus) error {
	const query = `
        UPDATE rent_orders SET status=$1, updated_at=NOW()
        WHERE provider_order_id=$2 AND status='PENDING'`
	cmd, err := r.pool.Exec(ctx, query, status, providerOrderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
