package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

func seedLease(t *testing.T, leases *fakeLeaseRepo, tenantID, landlordID string, rent float64) *domain.Lease {
	t.Helper()
	lease := &domain.Lease{
		TenantID:    tenantID,
		LandlordID:  landlordID,
		MonthlyRent: rent,
		DueDay:      5,
		IsActive:    true,
	}
	require.NoError(t, leases.Create(context.Background(), lease))
	return lease
}

func newRentFixture() (*RentService, *fakeLeaseRepo, *fakePaymentRepo, *recordingDispatcher) {
	leases := newFakeLeaseRepo()
	payments := &fakePaymentRepo{}
	dispatcher := &recordingDispatcher{}
	svc := NewRentService(RentDependencies{
		LeaseRepo:   leases,
		PaymentRepo: payments,
		Dispatcher:  dispatcher,
	})
	return svc, leases, payments, dispatcher
}

func TestTenantLedgerEvaluatesPeriod(t *testing.T) {
	svc, leases, payments, _ := newRentFixture()
	lease := seedLease(t, leases, "tenant-1", "landlord-1", 1200)

	require.NoError(t, payments.Create(context.Background(), &domain.RentPayment{
		LeaseID: lease.ID, Amount: 400, Month: 3, Year: 2026, Status: domain.PaymentStatusPaid,
	}))

	ledger, err := svc.TenantLedger(context.Background(), "tenant-1", 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, 400.0, ledger.PaidTotal)
	assert.Equal(t, domain.RentStatePartial, ledger.State)
	assert.Equal(t, 800.0, ledger.Outstanding)
	assert.Len(t, ledger.Payments, 1)
}

func TestTenantLedgerWithoutLeaseIsNotFound(t *testing.T) {
	svc, _, _, _ := newRentFixture()

	_, err := svc.TenantLedger(context.Background(), "tenant-1", 3, 2026)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestTenantLedgerRejectsBadPeriod(t *testing.T) {
	svc, leases, _, _ := newRentFixture()
	seedLease(t, leases, "tenant-1", "landlord-1", 1200)

	_, err := svc.TenantLedger(context.Background(), "tenant-1", 13, 2026)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestRecordManualPayment(t *testing.T) {
	svc, leases, _, dispatcher := newRentFixture()
	lease := seedLease(t, leases, "tenant-1", "landlord-1", 1000)

	payment, err := svc.RecordManualPayment(context.Background(), "tenant-1", ManualPaymentInput{
		Amount: 250, Month: 4, Year: 2026,
	})
	require.NoError(t, err)
	assert.Equal(t, lease.ID, payment.LeaseID)
	assert.Equal(t, domain.PaymentMethodManual, payment.Method)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventRentPaymentRecorded, published[0].Type)

	ledger, err := svc.TenantLedger(context.Background(), "tenant-1", 4, 2026)
	require.NoError(t, err)
	assert.Equal(t, 250.0, ledger.PaidTotal)
	assert.Equal(t, domain.RentStatePartial, ledger.State)
}

func TestRecordManualPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, leases, payments, _ := newRentFixture()
	seedLease(t, leases, "tenant-1", "landlord-1", 1000)

	for _, amount := range []float64{0, -50} {
		_, err := svc.RecordManualPayment(context.Background(), "tenant-1", ManualPaymentInput{
			Amount: amount, Month: 4, Year: 2026,
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
	assert.Empty(t, payments.payments)
}

func TestLandlordOverviewClassifiesAndCountsUnpaid(t *testing.T) {
	svc, _, payments, _ := newRentFixture()
	payments.overview = []repository.RentOverviewRow{
		{LeaseID: "l1", MonthlyRent: 1000, PaidAmount: 1000},
		{LeaseID: "l2", MonthlyRent: 1000, PaidAmount: 300},
		{LeaseID: "l3", MonthlyRent: 1000, PaidAmount: 0},
	}

	overview, err := svc.LandlordOverview(context.Background(), "landlord-1", 5, 2026)
	require.NoError(t, err)
	require.Len(t, overview.Entries, 3)
	assert.Equal(t, domain.RentStatePaid, overview.Entries[0].State)
	assert.Equal(t, domain.RentStatePartial, overview.Entries[1].State)
	assert.Equal(t, domain.RentStateUnpaid, overview.Entries[2].State)
	assert.Equal(t, 0.0, overview.Entries[0].Outstanding)
	assert.Equal(t, 700.0, overview.Entries[1].Outstanding)
	assert.Equal(t, 2, overview.UnpaidCount)
}

func TestResolvePeriodDefaultsToCurrentMonth(t *testing.T) {
	svc, _, _, _ := newRentFixture()

	month, year, err := svc.ResolvePeriod(0, 0)
	require.NoError(t, err)
	assert.True(t, domain.ValidBillingMonth(month))
	assert.NotZero(t, year)
}
