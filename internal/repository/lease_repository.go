package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// LeaseWithTenant pairs a lease with the tenant's display fields.
type LeaseWithTenant struct {
	domain.Lease
	TenantName     string
	TenantUsername string
}

// LeaseRepository encapsulates lease persistence.
type LeaseRepository interface {
	Create(ctx context.Context, lease *domain.Lease) error
	Update(ctx context.Context, lease *domain.Lease) error
	GetByID(ctx context.Context, id string) (*domain.Lease, error)
	// CurrentForTenant returns the most recently created active lease.
	CurrentForTenant(ctx context.Context, tenantID string) (*domain.Lease, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]LeaseWithTenant, error)
}

type leaseRepository struct {
	pool *pgxpool.Pool
}

// NewLeaseRepository instantiates repository.
func NewLeaseRepository(pool *pgxpool.Pool) LeaseRepository {
	return &leaseRepository{pool: pool}
}

func (r *leaseRepository) Create(ctx context.Context, lease *domain.Lease) error {
	const query = `
        INSERT INTO leases (tenant_id, landlord_id, monthly_rent, due_day, start_date, end_date, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		lease.TenantID,
		lease.LandlordID,
		lease.MonthlyRent,
		lease.DueDay,
		lease.StartDate,
		lease.EndDate,
		lease.IsActive,
	).Scan(&lease.ID, &lease.CreatedAt, &lease.UpdatedAt)
}

func (r *leaseRepository) Update(ctx context.Context, lease *domain.Lease) error {
	const query = `
        UPDATE leases SET monthly_rent=$1, due_day=$2, start_date=$3, end_date=$4,
            is_active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		lease.MonthlyRent,
		lease.DueDay,
		lease.StartDate,
		lease.EndDate,
		lease.IsActive,
		lease.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaseRepository) GetByID(ctx context.Context, id string) (*domain.Lease, error) {
	const query = `
        SELECT id, tenant_id, landlord_id, monthly_rent, due_day, start_date, end_date,
               is_active, created_at, updated_at
        FROM leases WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *leaseRepository) CurrentForTenant(ctx context.Context, tenantID string) (*domain.Lease, error) {
	const query = `
        SELECT id, tenant_id, landlord_id, monthly_rent, due_day, start_date, end_date,
               is_active, created_at, updated_at
        FROM leases
        WHERE tenant_id=$1 AND is_active
        ORDER BY created_at DESC
        LIMIT 1`
	return r.fetchSingle(ctx, query, tenantID)
}

func (r *leaseRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Lease, error) {
	var lease domain.Lease
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&lease.ID,
		&lease.TenantID,
		&lease.LandlordID,
		&lease.MonthlyRent,
		&lease.DueDay,
		&lease.StartDate,
		&lease.EndDate,
		&lease.IsActive,
		&lease.CreatedAt,
		&lease.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *leaseRepository) ListByLandlord(ctx context.Context, landlordID string) ([]LeaseWithTenant, error) {
	const query = `
        SELECT l.id, l.tenant_id, l.landlord_id, l.monthly_rent, l.due_day, l.start_date,
               l.end_date, l.is_active, l.created_at, l.updated_at,
               t.full_name, t.username
        FROM leases l
        JOIN users t ON t.id = l.tenant_id
        WHERE l.landlord_id=$1
        ORDER BY t.full_name, t.username`

	rows, err := r.pool.Query(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LeaseWithTenant
	for rows.Next() {
		var row LeaseWithTenant
		if err := rows.Scan(
			&row.ID,
			&row.TenantID,
			&row.LandlordID,
			&row.MonthlyRent,
			&row.DueDay,
			&row.StartDate,
			&row.EndDate,
			&row.IsActive,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.TenantName,
			&row.TenantUsername,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
