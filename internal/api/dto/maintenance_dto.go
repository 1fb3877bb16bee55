package dto

import (
	"time"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/service"
)

// CreateMaintenanceRequest payload.
type CreateMaintenanceRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    string              `json:"priority"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// AttachmentRequest describes one uploaded image's metadata.
type AttachmentRequest struct {
	StorageKey string `json:"storage_key"`
	FileName   string `json:"file_name"`
	MimeType   string `json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes"`
}

// UpdateRequestStatusRequest payload.
type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

// MaintenanceRequestResponse is the public shape of a request.
type MaintenanceRequestResponse struct {
	ID             string                 `json:"id"`
	TenantID       string                 `json:"tenant_id"`
	TenantName     string                 `json:"tenant_name,omitempty"`
	TenantUsername string                 `json:"tenant_username,omitempty"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Status         domain.RequestStatus   `json:"status"`
	Priority       domain.RequestPriority `json:"priority"`
	Overdue        bool                   `json:"overdue"`
	Attachments    []AttachmentResponse   `json:"attachments"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	ID         string `json:"id"`
	StorageKey string `json:"storage_key"`
	FileName   string `json:"file_name"`
	MimeType   string `json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes"`
}

// ToMaintenanceRequestResponse maps a domain request with its overdue flag.
func ToMaintenanceRequestResponse(request *domain.MaintenanceRequest, overdue bool) MaintenanceRequestResponse {
	attachments := make([]AttachmentResponse, 0, len(request.Attachments))
	for _, attachment := range request.Attachments {
		attachments = append(attachments, AttachmentResponse{
			ID:         attachment.ID,
			StorageKey: attachment.StorageKey,
			FileName:   attachment.FileName,
			MimeType:   attachment.MimeType,
			SizeBytes:  attachment.SizeBytes,
		})
	}
	return MaintenanceRequestResponse{
		ID:          request.ID,
		TenantID:    request.TenantID,
		Title:       request.Title,
		Description: request.Description,
		Status:      request.Status,
		Priority:    request.Priority,
		Overdue:     overdue,
		Attachments: attachments,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}

// ToRequestViewResponse maps a tenant-scoped view.
func ToRequestViewResponse(view service.RequestView) MaintenanceRequestResponse {
	return ToMaintenanceRequestResponse(&view.MaintenanceRequest, view.Overdue)
}

// ToLandlordRequestViewResponse maps a landlord listing row.
func ToLandlordRequestViewResponse(view service.LandlordRequestView) MaintenanceRequestResponse {
	resp := ToMaintenanceRequestResponse(&view.MaintenanceRequest, view.Overdue)
	resp.TenantName = view.TenantName
	resp.TenantUsername = view.TenantUsername
	return resp
}
