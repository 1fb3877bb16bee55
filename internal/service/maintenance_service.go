package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

// MaintenanceService tracks request lifecycles from report to completion.
type MaintenanceService struct {
	requests    repository.MaintenanceRequestRepository
	attachments repository.RequestAttachmentRepository
	dispatcher  events.Dispatcher
	now         func() time.Time
}

// MaintenanceDependencies bundles repositories for maintenance service.
type MaintenanceDependencies struct {
	RequestRepo    repository.MaintenanceRequestRepository
	AttachmentRepo repository.RequestAttachmentRepository
	Dispatcher     events.Dispatcher
}

// CreateRequestInput is the tenant's report payload.
type CreateRequestInput struct {
	Title       string
	Description string
	Priority    string
	Attachments []AttachmentInput
}

// AttachmentInput describes one uploaded image's metadata.
type AttachmentInput struct {
	StorageKey string
	FileName   string
	MimeType   string
	SizeBytes  int64
}

// RequestView decorates a request with its derived overdue flag.
type RequestView struct {
	domain.MaintenanceRequest
	Overdue bool
}

// LandlordRequestView adds tenant display fields for landlord listings.
type LandlordRequestView struct {
	repository.RequestWithTenant
	Overdue bool
}

// NewMaintenanceService constructs the service.
func NewMaintenanceService(deps MaintenanceDependencies) *MaintenanceService {
	return &MaintenanceService{
		requests:    deps.RequestRepo,
		attachments: deps.AttachmentRepo,
		dispatcher:  deps.Dispatcher,
		now:         time.Now,
	}
}

// CreateRequest files a new maintenance request for the tenant.
func (s *MaintenanceService) CreateRequest(ctx context.Context, tenantID string, input CreateRequestInput) (*domain.MaintenanceRequest, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	priority, err := domain.ParseRequestPriority(input.Priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	request := &domain.MaintenanceRequest{
		TenantID:    tenantID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      domain.RequestStatusOpen,
		Priority:    priority,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	for _, in := range input.Attachments {
		attachment := &domain.RequestAttachment{
			RequestID:  request.ID,
			StorageKey: in.StorageKey,
			FileName:   in.FileName,
			MimeType:   in.MimeType,
			SizeBytes:  in.SizeBytes,
		}
		if err := s.attachments.Create(ctx, attachment); err != nil {
			return nil, err
		}
		request.Attachments = append(request.Attachments, *attachment)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventRequestCreated,
		SubjectID: request.ID,
		Actor:     events.Actor{Role: domain.RoleTenant, UserID: tenantID},
		Payload: events.RequestCreatedPayload{
			TenantID: tenantID,
			Title:    request.Title,
			Priority: request.Priority,
		},
	})
	return request, nil
}

// UpdateStatus moves a request to a new lifecycle state. Unknown status
// values are rejected before any write happens.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, landlordID, requestID, statusValue string) (*domain.MaintenanceRequest, error) {
	status, err := domain.ParseRequestStatus(statusValue)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"status": statusValue})
	}

	request, err := s.requests.GetForLandlord(ctx, requestID, landlordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("maintenance request", map[string]any{"request_id": requestID})
		}
		return nil, err
	}
	if request.Status == status {
		return request, nil
	}

	oldStatus := request.Status
	if err := s.requests.UpdateStatus(ctx, request.ID, status); err != nil {
		return nil, err
	}
	request.Status = status
	request.UpdatedAt = s.now()

	s.publish(ctx, events.Event{
		Type:      events.EventRequestStatusChanged,
		SubjectID: request.ID,
		Actor:     events.Actor{Role: domain.RoleLandlord, UserID: landlordID},
		Payload: events.RequestStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return request, nil
}

// GetForTenant returns one request with attachments, scoped to its reporter.
func (s *MaintenanceService) GetForTenant(ctx context.Context, tenantID, requestID string) (*RequestView, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("maintenance request", map[string]any{"request_id": requestID})
		}
		return nil, err
	}
	if request.TenantID != tenantID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if request.Attachments, err = s.attachments.ListByRequest(ctx, request.ID); err != nil {
		return nil, err
	}
	return &RequestView{MaintenanceRequest: *request, Overdue: request.Overdue(s.now())}, nil
}

// ListForTenant lists the tenant's own requests with derived overdue flags.
func (s *MaintenanceService) ListForTenant(ctx context.Context, tenantID string) ([]RequestView, error) {
	requests, err := s.requests.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]RequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, RequestView{MaintenanceRequest: request, Overdue: request.Overdue(now)})
	}
	return views, nil
}

// ListForLandlord lists requests across the landlord's active leases.
func (s *MaintenanceService) ListForLandlord(ctx context.Context, landlordID string) ([]LandlordRequestView, error) {
	requests, err := s.requests.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]LandlordRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, LandlordRequestView{
			RequestWithTenant: request,
			Overdue:           request.Overdue(now),
		})
	}
	return views, nil
}

// CountOpenForLandlord supports the landlord dashboard counter.
func (s *MaintenanceService) CountOpenForLandlord(ctx context.Context, landlordID string) (int64, error) {
	return s.requests.CountOpenByLandlord(ctx, landlordID)
}

func (s *MaintenanceService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
