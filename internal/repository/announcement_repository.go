package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// AnnouncementRepository encapsulates announcement persistence.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	Update(ctx context.Context, announcement *domain.Announcement) error
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]domain.Announcement, error)
	// ListVisibleByLandlord returns active announcements whose expiry, if any,
	// is still in the future.
	ListVisibleByLandlord(ctx context.Context, landlordID string) ([]domain.Announcement, error)
}

type announcementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository instantiates repository.
func NewAnnouncementRepository(pool *pgxpool.Pool) AnnouncementRepository {
	return &announcementRepository{pool: pool}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	const query = `
        INSERT INTO announcements (landlord_id, title, content, is_active, expires_at)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		announcement.LandlordID,
		announcement.Title,
		announcement.Content,
		announcement.IsActive,
		announcement.ExpiresAt,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
}

func (r *announcementRepository) Update(ctx context.Context, announcement *domain.Announcement) error {
	const query = `
        UPDATE announcements SET title=$1, content=$2, is_active=$3, expires_at=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		announcement.Title,
		announcement.Content,
		announcement.IsActive,
		announcement.ExpiresAt,
		announcement.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	const query = `
        SELECT id, landlord_id, title, content, is_active, expires_at, created_at, updated_at
        FROM announcements WHERE id=$1`

	var announcement domain.Announcement
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&announcement.ID,
		&announcement.LandlordID,
		&announcement.Title,
		&announcement.Content,
		&announcement.IsActive,
		&announcement.ExpiresAt,
		&announcement.CreatedAt,
		&announcement.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Announcement, error) {
	const query = `
        SELECT id, landlord_id, title, content, is_active, expires_at, created_at, updated_at
        FROM announcements
        WHERE landlord_id=$1
        ORDER BY created_at DESC`
	return r.list(ctx, query, landlordID)
}

func (r *announcementRepository) ListVisibleByLandlord(ctx context.Context, landlordID string) ([]domain.Announcement, error) {
	const query = `
        SELECT id, landlord_id, title, content, is_active, expires_at, created_at, updated_at
        FROM announcements
        WHERE landlord_id=$1 AND is_active AND (expires_at IS NULL OR expires_at > NOW())
        ORDER BY created_at DESC`
	return r.list(ctx, query, landlordID)
}

func (r *announcementRepository) list(ctx context.Context, query string, arg any) ([]domain.Announcement, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Announcement
	for rows.Next() {
		var announcement domain.Announcement
		if err := rows.Scan(
			&announcement.ID,
			&announcement.LandlordID,
			&announcement.Title,
			&announcement.Content,
			&announcement.IsActive,
			&announcement.ExpiresAt,
			&announcement.CreatedAt,
			&announcement.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, announcement)
	}
	return result, rows.Err()
}
