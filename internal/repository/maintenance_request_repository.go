package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// RequestWithTenant pairs a request with tenant display fields for landlord views.
type RequestWithTenant struct {
	domain.MaintenanceRequest
	TenantName     string
	TenantUsername string
}

// MaintenanceRequestRepository encapsulates maintenance request persistence.
type MaintenanceRequestRepository interface {
	Create(ctx context.Context, request *domain.MaintenanceRequest) error
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	// GetForLandlord fetches a request only when its tenant sits under one of
	// the landlord's active leases.
	GetForLandlord(ctx context.Context, id, landlordID string) (*domain.MaintenanceRequest, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]RequestWithTenant, error)
	CountOpenByLandlord(ctx context.Context, landlordID string) (int64, error)
}

type maintenanceRequestRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRequestRepository instantiates repository.
func NewMaintenanceRequestRepository(pool *pgxpool.Pool) MaintenanceRequestRepository {
	return &maintenanceRequestRepository{pool: pool}
}

func (r *maintenanceRequestRepository) Create(ctx context.Context, request *domain.MaintenanceRequest) error {
	const query = `
        INSERT INTO maintenance_requests (tenant_id, title, description, status, priority)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.TenantID,
		request.Title,
		request.Description,
		request.Status,
		request.Priority,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *maintenanceRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	const query = `
        UPDATE maintenance_requests SET status=$1, updated_at=NOW()
        WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *maintenanceRequestRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	const query = `
        SELECT id, tenant_id, title, description, status, priority, created_at, updated_at
        FROM maintenance_requests WHERE id=$1`
	return r.fetchSingle(ctx, r.pool.QueryRow(ctx, query, id))
}

func (r *maintenanceRequestRepository) GetForLandlord(ctx context.Context, id, landlordID string) (*domain.MaintenanceRequest, error) {
	const query = `
        SELECT mr.id, mr.tenant_id, mr.title, mr.description, mr.status, mr.priority,
               mr.created_at, mr.updated_at
        FROM maintenance_requests mr
        JOIN leases l ON l.tenant_id = mr.tenant_id AND l.is_active
        WHERE mr.id=$1 AND l.landlord_id=$2`
	return r.fetchSingle(ctx, r.pool.QueryRow(ctx, query, id, landlordID))
}

func (r *maintenanceRequestRepository) fetchSingle(_ context.Context, row pgx.Row) (*domain.MaintenanceRequest, error) {
	var request domain.MaintenanceRequest
	if err := row.Scan(
		&request.ID,
		&request.TenantID,
		&request.Title,
		&request.Description,
		&request.Status,
		&request.Priority,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *maintenanceRequestRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error) {
	const query = `
        SELECT id, tenant_id, title, description, status, priority, created_at, updated_at
        FROM maintenance_requests
        WHERE tenant_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MaintenanceRequest
	for rows.Next() {
		var request domain.MaintenanceRequest
		if err := rows.Scan(
			&request.ID,
			&request.TenantID,
			&request.Title,
			&request.Description,
			&request.Status,
			&request.Priority,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}

func (r *maintenanceRequestRepository) ListByLandlord(ctx context.Context, landlordID string) ([]RequestWithTenant, error) {
	const query = `
        SELECT mr.id, mr.tenant_id, mr.title, mr.description, mr.status, mr.priority,
               mr.created_at, mr.updated_at, t.full_name, t.username
        FROM maintenance_requests mr
        JOIN users t ON t.id = mr.tenant_id
        JOIN leases l ON l.tenant_id = t.id AND l.is_active
        WHERE l.landlord_id=$1
        ORDER BY mr.created_at DESC`

	rows, err := r.pool.Query(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RequestWithTenant
	for rows.Next() {
		var row RequestWithTenant
		if err := rows.Scan(
			&row.ID,
			&row.TenantID,
			&row.Title,
			&row.Description,
			&row.Status,
			&row.Priority,
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

func (r *maintenanceRequestRepository) CountOpenByLandlord(ctx context.Context, landlordID string) (int64, error) {
	const query = `
        SELECT COUNT(*)
        FROM maintenance_requests mr
        JOIN leases l ON l.tenant_id = mr.tenant_id AND l.is_active
        WHERE mr.status='OPEN' AND l.landlord_id=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, landlordID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
