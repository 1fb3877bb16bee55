package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// PaymentWithTenant pairs a payment with tenant display fields for landlord views.
type PaymentWithTenant struct {
	domain.RentPayment
	TenantName     string
	TenantUsername string
}

// RentOverviewRow aggregates one active lease's paid total for a billing period.
type RentOverviewRow struct {
	LeaseID        string
	TenantName     string
	TenantUsername string
	MonthlyRent    float64
	DueDay         int
	PaidAmount     float64
}

// RentPaymentRepository encapsulates rent payment persistence. Rows are
// append-only; there is no update or delete.
type RentPaymentRepository interface {
	Create(ctx context.Context, payment *domain.RentPayment) error
	ListForPeriod(ctx context.Context, leaseID string, month, year int) ([]domain.RentPayment, error)
	ListRecentByTenant(ctx context.Context, tenantID string, limit int) ([]domain.RentPayment, error)
	ListRecentByLandlord(ctx context.Context, landlordID string, limit int) ([]PaymentWithTenant, error)
	OverviewByLandlord(ctx context.Context, landlordID string, month, year int) ([]RentOverviewRow, error)
}

type rentPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewRentPaymentRepository instantiates repository.
func NewRentPaymentRepository(pool *pgxpool.Pool) RentPaymentRepository {
	return &rentPaymentRepository{pool: pool}
}

func (r *rentPaymentRepository) Create(ctx context.Context, payment *domain.RentPayment) error {
	const query = `
        INSERT INTO rent_payments (lease_id, amount, month, year, status, method, note)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, paid_at`
	return r.pool.QueryRow(ctx, query,
		payment.LeaseID,
		payment.Amount,
		payment.Month,
		payment.Year,
		payment.Status,
		payment.Method,
		payment.Note,
	).Scan(&payment.ID, &payment.PaidAt)
}

func (r *rentPaymentRepository) ListForPeriod(ctx context.Context, leaseID string, month, year int) ([]domain.RentPayment, error) {
	const query = `
        SELECT id, lease_id, amount, month, year, status, method, note, paid_at
        FROM rent_payments
        WHERE lease_id=$1 AND month=$2 AND year=$3
        ORDER BY paid_at`

	rows, err := r.pool.Query(ctx, query, leaseID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *rentPaymentRepository) ListRecentByTenant(ctx context.Context, tenantID string, limit int) ([]domain.RentPayment, error) {
	const query = `
        SELECT rp.id, rp.lease_id, rp.amount, rp.month, rp.year, rp.status, rp.method, rp.note, rp.paid_at
        FROM rent_payments rp
        JOIN leases l ON l.id = rp.lease_id
        WHERE l.tenant_id=$1
        ORDER BY rp.paid_at DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, tenantID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *rentPaymentRepository) ListRecentByLandlord(ctx context.Context, landlordID string, limit int) ([]PaymentWithTenant, error) {
	const query = `
        SELECT rp.id, rp.lease_id, rp.amount, rp.month, rp.year, rp.status, rp.method, rp.note, rp.paid_at,
               t.full_name, t.username
        FROM rent_payments rp
        JOIN leases l ON l.id = rp.lease_id
        JOIN users t ON t.id = l.tenant_id
        WHERE l.landlord_id=$1
        ORDER BY rp.paid_at DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, landlordID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PaymentWithTenant
	for rows.Next() {
		var row PaymentWithTenant
		if err := rows.Scan(
			&row.ID,
			&row.LeaseID,
			&row.Amount,
			&row.Month,
			&row.Year,
			&row.Status,
			&row.Method,
			&row.Note,
			&row.PaidAt,
			&row.TenantName,
			&row.TenantUsername,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *rentPaymentRepository) OverviewByLandlord(ctx context.Context, landlordID string, month, year int) ([]RentOverviewRow, error) {
	const query = `
        SELECT l.id, t.full_name, t.username, l.monthly_rent, l.due_day,
               COALESCE(SUM(CASE WHEN rp.status = 'PAID' THEN rp.amount ELSE 0 END), 0)
        FROM leases l
        JOIN users t ON t.id = l.tenant_id
        LEFT JOIN rent_payments rp
          ON rp.lease_id = l.id AND rp.month=$1 AND rp.year=$2
        WHERE l.is_active AND l.landlord_id=$3
        GROUP BY l.id, t.full_name, t.username, l.monthly_rent, l.due_day
        ORDER BY t.full_name, t.username`

	rows, err := r.pool.Query(ctx, query, month, year, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RentOverviewRow
	for rows.Next() {
		var row RentOverviewRow
		if err := rows.Scan(
			&row.LeaseID,
			&row.TenantName,
			&row.TenantUsername,
			&row.MonthlyRent,
			&row.DueDay,
			&row.PaidAmount,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func scanPayments(rows pgx.Rows) ([]domain.RentPayment, error) {
	var result []domain.RentPayment
	for rows.Next() {
		var payment domain.RentPayment
		if err := rows.Scan(
			&payment.ID,
			&payment.LeaseID,
			&payment.Amount,
			&payment.Month,
			&payment.Year,
			&payment.Status,
			&payment.Method,
			&payment.Note,
			&payment.PaidAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}
