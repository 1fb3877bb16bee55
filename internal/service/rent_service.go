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

// RentService evaluates rent ledgers and records manual payments.
type RentService struct {
	leases     repository.LeaseRepository
	payments   repository.RentPaymentRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// RentDependencies bundles repositories for rent service.
type RentDependencies struct {
	LeaseRepo   repository.LeaseRepository
	PaymentRepo repository.RentPaymentRepository
	Dispatcher  events.Dispatcher
}

// RentLedger is the evaluated state of one lease for one billing period.
type RentLedger struct {
	Lease       *domain.Lease
	Month       int
	Year        int
	PaidTotal   float64
	Outstanding float64
	State       domain.RentState
	DueDate     time.Time
	Payments    []domain.RentPayment
}

// OverviewEntry is one lease row in the landlord rent overview.
type OverviewEntry struct {
	LeaseID        string
	TenantName     string
	TenantUsername string
	MonthlyRent    float64
	DueDay         int
	PaidAmount     float64
	Outstanding    float64
	State          domain.RentState
}

// RentOverview aggregates the landlord's active leases for a billing period.
type RentOverview struct {
	Month       int
	Year        int
	Entries     []OverviewEntry
	UnpaidCount int
}

// ManualPaymentInput is an offline payment recorded against the caller's
// current lease.
type ManualPaymentInput struct {
	Amount float64
	Month  int
	Year   int
	Note   *string
}

// NewRentService constructs the service.
func NewRentService(deps RentDependencies) *RentService {
	return &RentService{
		leases:     deps.LeaseRepo,
		payments:   deps.PaymentRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// ResolvePeriod fills a missing billing period with the current month.
func (s *RentService) ResolvePeriod(month, year int) (int, int, error) {
	current := s.now()
	if month == 0 && year == 0 {
		return int(current.Month()), current.Year(), nil
	}
	if !domain.ValidBillingMonth(month) {
		return 0, 0, apperrors.NewValidationError("month must be between 1 and 12", nil)
	}
	if year < 2000 || year > 2999 {
		return 0, 0, apperrors.NewValidationError("year out of range", nil)
	}
	return month, year, nil
}

// LedgerFor evaluates one lease's rent state for a billing period.
func (s *RentService) LedgerFor(ctx context.Context, lease *domain.Lease, month, year int) (*RentLedger, error) {
	payments, err := s.payments.ListForPeriod(ctx, lease.ID, month, year)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LedgerEntry, 0, len(payments))
	for _, payment := range payments {
		entries = append(entries, domain.LedgerEntry{Amount: payment.Amount, Status: payment.Status})
	}
	paidTotal, state := domain.EvaluateLedger(lease.MonthlyRent, entries)

	return &RentLedger{
		Lease:       lease,
		Month:       month,
		Year:        year,
		PaidTotal:   paidTotal,
		Outstanding: domain.OutstandingBalance(lease.MonthlyRent, paidTotal),
		State:       state,
		DueDate:     lease.DueDate(month, year),
		Payments:    payments,
	}, nil
}

// TenantLedger evaluates the tenant's current lease for a billing period.
func (s *RentService) TenantLedger(ctx context.Context, tenantID string, month, year int) (*RentLedger, error) {
	month, year, err := s.ResolvePeriod(month, year)
	if err != nil {
		return nil, err
	}
	lease, err := s.leases.CurrentForTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("active lease", nil)
		}
		return nil, err
	}
	return s.LedgerFor(ctx, lease, month, year)
}

// RecordManualPayment stores an offline payment reported by the tenant
// against their current lease.
func (s *RentService) RecordManualPayment(ctx context.Context, tenantID string, input ManualPaymentInput) (*domain.RentPayment, error) {
	if input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be greater than zero", nil)
	}
	month, year, err := s.ResolvePeriod(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	lease, err := s.leases.CurrentForTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("active lease", nil)
		}
		return nil, err
	}

	payment := &domain.RentPayment{
		LeaseID: lease.ID,
		Amount:  input.Amount,
		Month:   month,
		Year:    year,
		Status:  domain.PaymentStatusPaid,
		Method:  domain.PaymentMethodManual,
		Note:    input.Note,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventRentPaymentRecorded,
		SubjectID: payment.ID,
		Actor:     events.Actor{Role: domain.RoleTenant, UserID: tenantID},
		Payload: events.RentPaymentRecordedPayload{
			LeaseID: payment.LeaseID,
			Amount:  payment.Amount,
			Month:   payment.Month,
			Year:    payment.Year,
			Method:  payment.Method,
		},
	})
	return payment, nil
}

// RecordGatewayPayment stores a payment settled through the online gateway.
// The payment service calls this after verifying the provider signature.
func (s *RentService) RecordGatewayPayment(ctx context.Context, order *domain.RentOrder, note *string) (*domain.RentPayment, error) {
	payment := &domain.RentPayment{
		LeaseID: order.LeaseID,
		Amount:  order.Amount,
		Month:   order.Month,
		Year:    order.Year,
		Status:  domain.PaymentStatusPaid,
		Method:  domain.PaymentMethodGateway,
		Note:    note,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	lease, err := s.leases.GetByID(ctx, order.LeaseID)
	actor := events.Actor{Role: domain.RoleTenant}
	if err == nil {
		actor.UserID = lease.TenantID
	}
	s.publish(ctx, events.Event{
		Type:      events.EventRentPaymentRecorded,
		SubjectID: payment.ID,
		Actor:     actor,
		Payload: events.RentPaymentRecordedPayload{
			LeaseID: payment.LeaseID,
			Amount:  payment.Amount,
			Month:   payment.Month,
			Year:    payment.Year,
			Method:  payment.Method,
		},
	})
	return payment, nil
}

// LandlordOverview evaluates every active lease of the landlord for a period.
func (s *RentService) LandlordOverview(ctx context.Context, landlordID string, month, year int) (*RentOverview, error) {
	month, year, err := s.ResolvePeriod(month, year)
	if err != nil {
		return nil, err
	}

	rows, err := s.payments.OverviewByLandlord(ctx, landlordID, month, year)
	if err != nil {
		return nil, err
	}

	overview := &RentOverview{Month: month, Year: year}
	for _, row := range rows {
		state := domain.ClassifyPaidTotal(row.MonthlyRent, row.PaidAmount)
		if state != domain.RentStatePaid {
			overview.UnpaidCount++
		}
		overview.Entries = append(overview.Entries, OverviewEntry{
			LeaseID:        row.LeaseID,
			TenantName:     row.TenantName,
			TenantUsername: row.TenantUsername,
			MonthlyRent:    row.MonthlyRent,
			DueDay:         row.DueDay,
			PaidAmount:     row.PaidAmount,
			Outstanding:    domain.OutstandingBalance(row.MonthlyRent, row.PaidAmount),
			State:          state,
		})
	}
	return overview, nil
}

// RecentForTenant lists the tenant's latest payments.
func (s *RentService) RecentForTenant(ctx context.Context, tenantID string, limit int) ([]domain.RentPayment, error) {
	return s.payments.ListRecentByTenant(ctx, tenantID, limit)
}

// RecentForLandlord lists the latest payments across the landlord's leases.
func (s *RentService) RecentForLandlord(ctx context.Context, landlordID string, limit int) ([]repository.PaymentWithTenant, error) {
	return s.payments.ListRecentByLandlord(ctx, landlordID, limit)
}

func (s *RentService) publish(ctx context.Context, event events.Event) {
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
