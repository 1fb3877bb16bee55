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

// AnnouncementService manages landlord notices shown to tenants.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	leases        repository.LeaseRepository
	dispatcher    events.Dispatcher
	now           func() time.Time
}

// AnnouncementDependencies bundles repositories for announcement service.
type AnnouncementDependencies struct {
	AnnouncementRepo repository.AnnouncementRepository
	LeaseRepo        repository.LeaseRepository
	Dispatcher       events.Dispatcher
}

// AnnouncementInput is the landlord's publish payload.
type AnnouncementInput struct {
	Title     string
	Content   string
	ExpiresAt *time.Time
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(deps AnnouncementDependencies) *AnnouncementService {
	return &AnnouncementService{
		announcements: deps.AnnouncementRepo,
		leases:        deps.LeaseRepo,
		dispatcher:    deps.Dispatcher,
		now:           time.Now,
	}
}

// Publish creates an active announcement for the landlord's tenants.
func (s *AnnouncementService) Publish(ctx context.Context, landlordID string, input AnnouncementInput) (*domain.Announcement, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if input.ExpiresAt != nil && !input.ExpiresAt.After(s.now()) {
		return nil, apperrors.NewValidationError("expiry must be in the future", nil)
	}

	announcement := &domain.Announcement{
		LandlordID: landlordID,
		Title:      title,
		Content:    strings.TrimSpace(input.Content),
		IsActive:   true,
		ExpiresAt:  input.ExpiresAt,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventAnnouncementPublished,
		SubjectID: announcement.ID,
		Actor:     events.Actor{Role: domain.RoleLandlord, UserID: landlordID},
		Payload: events.AnnouncementPublishedPayload{
			LandlordID: landlordID,
			Title:      announcement.Title,
			ExpiresAt:  announcement.ExpiresAt,
		},
	})
	return announcement, nil
}

// Deactivate hides an announcement from tenants without deleting it.
func (s *AnnouncementService) Deactivate(ctx context.Context, landlordID, announcementID string) (*domain.Announcement, error) {
	announcement, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("announcement", map[string]any{"announcement_id": announcementID})
		}
		return nil, err
	}
	if announcement.LandlordID != landlordID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if !announcement.IsActive {
		return announcement, nil
	}
	announcement.IsActive = false
	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// ListForLandlord returns all of the landlord's announcements, active or not.
func (s *AnnouncementService) ListForLandlord(ctx context.Context, landlordID string) ([]domain.Announcement, error) {
	return s.announcements.ListByLandlord(ctx, landlordID)
}

// ListForTenant returns visible announcements from the tenant's current
// landlord. Tenants without an active lease see none.
func (s *AnnouncementService) ListForTenant(ctx context.Context, tenantID string) ([]domain.Announcement, error) {
	lease, err := s.leases.CurrentForTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s.announcements.ListVisibleByLandlord(ctx, lease.LandlordID)
}

func (s *AnnouncementService) publish(ctx context.Context, event events.Event) {
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
