package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

// LeaseService coordinates lease management by landlords.
type LeaseService struct {
	leases     repository.LeaseRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// LeaseDependencies bundles repositories for lease service.
type LeaseDependencies struct {
	LeaseRepo  repository.LeaseRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// LeaseInput describes lease creation and update payloads.
type LeaseInput struct {
	TenantID    string
	MonthlyRent float64
	DueDay      int
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    bool
}

// NewLeaseService constructs the service.
func NewLeaseService(deps LeaseDependencies) *LeaseService {
	return &LeaseService{
		leases:     deps.LeaseRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

func validateLeaseTerms(monthlyRent float64, dueDay int) error {
	if monthlyRent <= 0 {
		return apperrors.NewValidationError("monthly rent must be greater than zero", nil)
	}
	if !domain.ValidDueDay(dueDay) {
		return apperrors.NewValidationError("due day must be between 1 and 28", map[string]any{
			"min": domain.MinDueDay,
			"max": domain.MaxDueDay,
		})
	}
	return nil
}

// CreateLease creates a lease between the landlord and an existing tenant.
func (s *LeaseService) CreateLease(ctx context.Context, landlordID string, input LeaseInput) (*domain.Lease, error) {
	if err := validateLeaseTerms(input.MonthlyRent, input.DueDay); err != nil {
		return nil, err
	}

	tenant, err := s.users.GetByID(ctx, input.TenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("tenant", map[string]any{"tenant_id": input.TenantID})
		}
		return nil, err
	}
	if tenant.Role != domain.RoleTenant {
		return nil, apperrors.NewValidationError("lease tenant must have the tenant role", nil)
	}

	lease := &domain.Lease{
		TenantID:    tenant.ID,
		LandlordID:  landlordID,
		MonthlyRent: input.MonthlyRent,
		DueDay:      input.DueDay,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsActive:    input.IsActive,
	}
	if err := s.leases.Create(ctx, lease); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventLeaseCreated,
		SubjectID: lease.ID,
		Actor:     events.Actor{Role: domain.RoleLandlord, UserID: landlordID},
		Payload: events.LeaseCreatedPayload{
			TenantID:    lease.TenantID,
			LandlordID:  lease.LandlordID,
			MonthlyRent: lease.MonthlyRent,
			DueDay:      lease.DueDay,
		},
	})
	return lease, nil
}

// UpdateLease updates lease terms, enforcing landlord ownership.
func (s *LeaseService) UpdateLease(ctx context.Context, landlordID, leaseID string, input LeaseInput) (*domain.Lease, error) {
	if err := validateLeaseTerms(input.MonthlyRent, input.DueDay); err != nil {
		return nil, err
	}

	lease, err := s.ownedLease(ctx, landlordID, leaseID)
	if err != nil {
		return nil, err
	}

	lease.MonthlyRent = input.MonthlyRent
	lease.DueDay = input.DueDay
	lease.StartDate = input.StartDate
	lease.EndDate = input.EndDate
	lease.IsActive = input.IsActive
	if err := s.leases.Update(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

// DeactivateLease toggles the active flag off. Leases are never hard-deleted.
func (s *LeaseService) DeactivateLease(ctx context.Context, landlordID, leaseID string) (*domain.Lease, error) {
	lease, err := s.ownedLease(ctx, landlordID, leaseID)
	if err != nil {
		return nil, err
	}
	if !lease.IsActive {
		return lease, nil
	}
	lease.IsActive = false
	if err := s.leases.Update(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

// ListForLandlord returns the landlord's leases with tenant names.
func (s *LeaseService) ListForLandlord(ctx context.Context, landlordID string) ([]repository.LeaseWithTenant, error) {
	return s.leases.ListByLandlord(ctx, landlordID)
}

// CurrentForTenant returns the tenant's current lease.
func (s *LeaseService) CurrentForTenant(ctx context.Context, tenantID string) (*domain.Lease, error) {
	return s.leases.CurrentForTenant(ctx, tenantID)
}

func (s *LeaseService) ownedLease(ctx context.Context, landlordID, leaseID string) (*domain.Lease, error) {
	lease, err := s.leases.GetByID(ctx, leaseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lease", map[string]any{"lease_id": leaseID})
		}
		return nil, err
	}
	if lease.LandlordID != landlordID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return lease, nil
}

func (s *LeaseService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
