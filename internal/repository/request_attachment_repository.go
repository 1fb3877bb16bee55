package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// RequestAttachmentRepository persists image metadata for maintenance requests.
type RequestAttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.RequestAttachment) error
	ListByRequest(ctx context.Context, requestID string) ([]domain.RequestAttachment, error)
}

type requestAttachmentRepository struct {
	pool *pgxpool.Pool
}

// NewRequestAttachmentRepository constructs repository.
func NewRequestAttachmentRepository(pool *pgxpool.Pool) RequestAttachmentRepository {
	return &requestAttachmentRepository{pool: pool}
}

func (r *requestAttachmentRepository) Create(ctx context.Context, attachment *domain.RequestAttachment) error {
	const query = `
        INSERT INTO request_attachments (request_id, storage_key, file_name, mime_type, size_bytes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		attachment.RequestID,
		attachment.StorageKey,
		attachment.FileName,
		attachment.MimeType,
		attachment.SizeBytes,
	).Scan(&attachment.ID, &attachment.CreatedAt)
}

func (r *requestAttachmentRepository) ListByRequest(ctx context.Context, requestID string) ([]domain.RequestAttachment, error) {
	const query = `
        SELECT id, request_id, storage_key, file_name, mime_type, size_bytes, created_at
        FROM request_attachments WHERE request_id=$1`
	rows, err := r.pool.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RequestAttachment
	for rows.Next() {
		var attachment domain.RequestAttachment
		if err := rows.Scan(
			&attachment.ID,
			&attachment.RequestID,
			&attachment.StorageKey,
			&attachment.FileName,
			&attachment.MimeType,
			&attachment.SizeBytes,
			&attachment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, attachment)
	}
	return result, rows.Err()
}
