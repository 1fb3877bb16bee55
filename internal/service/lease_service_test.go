package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

func newLeaseFixture(t *testing.T) (*LeaseService, *fakeUserRepo, *fakeLeaseRepo, *recordingDispatcher, *domain.User) {
	t.Helper()
	users := newFakeUserRepo()
	leases := newFakeLeaseRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewLeaseService(LeaseDependencies{
		LeaseRepo:  leases,
		UserRepo:   users,
		Dispatcher: dispatcher,
	})

	tenant := &domain.User{Username: "tenant", Role: domain.RoleTenant, FullName: "Test Tenant"}
	require.NoError(t, users.Create(context.Background(), tenant))
	return svc, users, leases, dispatcher, tenant
}

func TestCreateLease(t *testing.T) {
	svc, _, _, dispatcher, tenant := newLeaseFixture(t)

	lease, err := svc.CreateLease(context.Background(), "landlord-1", LeaseInput{
		TenantID:    tenant.ID,
		MonthlyRent: 1500,
		DueDay:      5,
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, lease.TenantID)
	assert.Equal(t, "landlord-1", lease.LandlordID)
	assert.True(t, lease.IsActive)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventLeaseCreated, published[0].Type)
}

func TestCreateLeaseRejectsBadTerms(t *testing.T) {
	svc, _, leases, _, tenant := newLeaseFixture(t)

	cases := []LeaseInput{
		{TenantID: tenant.ID, MonthlyRent: 0, DueDay: 5},
		{TenantID: tenant.ID, MonthlyRent: -100, DueDay: 5},
		{TenantID: tenant.ID, MonthlyRent: 1000, DueDay: 0},
		{TenantID: tenant.ID, MonthlyRent: 1000, DueDay: 29},
	}
	for _, input := range cases {
		_, err := svc.CreateLease(context.Background(), "landlord-1", input)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
	assert.Empty(t, leases.leases)
}

func TestCreateLeaseRejectsNonTenant(t *testing.T) {
	svc, users, _, _, _ := newLeaseFixture(t)
	landlord := &domain.User{Username: "owner", Role: domain.RoleLandlord}
	require.NoError(t, users.Create(context.Background(), landlord))

	_, err := svc.CreateLease(context.Background(), "landlord-1", LeaseInput{
		TenantID:    landlord.ID,
		MonthlyRent: 1000,
		DueDay:      5,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCreateLeaseUnknownTenantIsNotFound(t *testing.T) {
	svc, _, _, _, _ := newLeaseFixture(t)

	_, err := svc.CreateLease(context.Background(), "landlord-1", LeaseInput{
		TenantID:    "missing",
		MonthlyRent: 1000,
		DueDay:      5,
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUpdateLeaseEnforcesOwnership(t *testing.T) {
	svc, _, _, _, tenant := newLeaseFixture(t)

	lease, err := svc.CreateLease(context.Background(), "landlord-1", LeaseInput{
		TenantID: tenant.ID, MonthlyRent: 1000, DueDay: 5, IsActive: true,
	})
	require.NoError(t, err)

	_, err = svc.UpdateLease(context.Background(), "landlord-2", lease.ID, LeaseInput{
		TenantID: tenant.ID, MonthlyRent: 1100, DueDay: 5, IsActive: true,
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestDeactivateLeaseHidesItFromCurrent(t *testing.T) {
	svc, _, _, _, tenant := newLeaseFixture(t)

	lease, err := svc.CreateLease(context.Background(), "landlord-1", LeaseInput{
		TenantID: tenant.ID, MonthlyRent: 1000, DueDay: 5, IsActive: true,
	})
	require.NoError(t, err)

	current, err := svc.CurrentForTenant(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, lease.ID, current.ID)

	deactivated, err := svc.DeactivateLease(context.Background(), "landlord-1", lease.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	_, err = svc.CurrentForTenant(context.Background(), tenant.ID)
	assert.Error(t, err)
}
