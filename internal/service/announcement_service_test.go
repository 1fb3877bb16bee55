package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

func newAnnouncementFixture() (*AnnouncementService, *fakeAnnouncementRepo, *fakeLeaseRepo, *recordingDispatcher) {
	announcements := newFakeAnnouncementRepo()
	leases := newFakeLeaseRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewAnnouncementService(AnnouncementDependencies{
		AnnouncementRepo: announcements,
		LeaseRepo:        leases,
		Dispatcher:       dispatcher,
	})
	return svc, announcements, leases, dispatcher
}

func TestPublishAnnouncement(t *testing.T) {
	svc, _, _, dispatcher := newAnnouncementFixture()

	announcement, err := svc.Publish(context.Background(), "landlord-1", AnnouncementInput{
		Title:   "Water shutoff",
		Content: "Tuesday 9am to noon",
	})
	require.NoError(t, err)
	assert.True(t, announcement.IsActive)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventAnnouncementPublished, published[0].Type)
}

func TestPublishRejectsPastExpiry(t *testing.T) {
	svc, _, _, _ := newAnnouncementFixture()
	past := time.Now().Add(-time.Hour)

	_, err := svc.Publish(context.Background(), "landlord-1", AnnouncementInput{
		Title:     "Old news",
		ExpiresAt: &past,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestDeactivateEnforcesOwnership(t *testing.T) {
	svc, _, _, _ := newAnnouncementFixture()

	announcement, err := svc.Publish(context.Background(), "landlord-1", AnnouncementInput{Title: "Notice"})
	require.NoError(t, err)

	_, err = svc.Deactivate(context.Background(), "landlord-2", announcement.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	deactivated, err := svc.Deactivate(context.Background(), "landlord-1", announcement.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
}

func TestListForTenantScopesToCurrentLandlord(t *testing.T) {
	svc, _, leases, _ := newAnnouncementFixture()
	seedLease(t, leases, "tenant-1", "landlord-1", 1000)

	_, err := svc.Publish(context.Background(), "landlord-1", AnnouncementInput{Title: "Mine"})
	require.NoError(t, err)
	_, err = svc.Publish(context.Background(), "landlord-2", AnnouncementInput{Title: "Other building"})
	require.NoError(t, err)

	visible, err := svc.ListForTenant(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Mine", visible[0].Title)
}

func TestListForTenantWithoutLeaseIsEmpty(t *testing.T) {
	svc, _, _, _ := newAnnouncementFixture()

	visible, err := svc.ListForTenant(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestDeactivatedAnnouncementHiddenFromTenants(t *testing.T) {
	svc, _, leases, _ := newAnnouncementFixture()
	seedLease(t, leases, "tenant-1", "landlord-1", 1000)

	announcement, err := svc.Publish(context.Background(), "landlord-1", AnnouncementInput{Title: "Temp"})
	require.NoError(t, err)
	_, err = svc.Deactivate(context.Background(), "landlord-1", announcement.ID)
	require.NoError(t, err)

	visible, err := svc.ListForTenant(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Empty(t, visible)

	// still listed for the landlord
	all, err := svc.ListForLandlord(context.Background(), "landlord-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
