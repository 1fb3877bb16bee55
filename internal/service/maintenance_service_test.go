package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

func newMaintenanceFixture() (*MaintenanceService, *fakeRequestRepo, *fakeAttachmentRepo, *recordingDispatcher) {
	requests := newFakeRequestRepo()
	attachments := &fakeAttachmentRepo{}
	dispatcher := &recordingDispatcher{}
	svc := NewMaintenanceService(MaintenanceDependencies{
		RequestRepo:    requests,
		AttachmentRepo: attachments,
		Dispatcher:     dispatcher,
	})
	return svc, requests, attachments, dispatcher
}

func TestCreateRequestStartsOpen(t *testing.T) {
	svc, _, _, dispatcher := newMaintenanceFixture()

	request, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{
		Title:       "  Leaking tap  ",
		Description: "kitchen sink drips",
	})
	require.NoError(t, err)
	assert.Equal(t, "Leaking tap", request.Title)
	assert.Equal(t, domain.RequestStatusOpen, request.Status)
	assert.Equal(t, domain.RequestPriorityNormal, request.Priority)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventRequestCreated, published[0].Type)
}

func TestCreateRequestStoresAttachments(t *testing.T) {
	svc, _, attachments, _ := newMaintenanceFixture()

	request, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{
		Title:    "Broken window",
		Priority: "HIGH",
		Attachments: []AttachmentInput{
			{StorageKey: "uploads/a.jpg", FileName: "a.jpg", MimeType: "image/jpeg", SizeBytes: 1024},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPriorityHigh, request.Priority)
	require.Len(t, request.Attachments, 1)
	assert.Len(t, attachments.attachments, 1)
	assert.Equal(t, request.ID, attachments.attachments[0].RequestID)
}

func TestCreateRequestRequiresTitle(t *testing.T) {
	svc, requests, _, _ := newMaintenanceFixture()

	_, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{Title: "   "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	assert.Empty(t, requests.requests)
}

func TestUpdateStatusRejectsUnknownValueWithoutWriting(t *testing.T) {
	svc, requests, _, dispatcher := newMaintenanceFixture()
	requests.landlordByTenant["tenant-1"] = "landlord-1"

	request, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{Title: "Heater"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "landlord-1", request.ID, "CANCELLED")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	stored, err := requests.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusOpen, stored.Status)

	// only the create event
	assert.Len(t, dispatcher.published(), 1)
}

func TestUpdateStatusEnforcesLandlordScope(t *testing.T) {
	svc, requests, _, _ := newMaintenanceFixture()
	requests.landlordByTenant["tenant-1"] = "landlord-1"

	request, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{Title: "Door"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "landlord-2", request.ID, "IN_PROGRESS")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUpdateStatusTransitionsAndPublishes(t *testing.T) {
	svc, requests, _, dispatcher := newMaintenanceFixture()
	requests.landlordByTenant["tenant-1"] = "landlord-1"

	request, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{Title: "Roof"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "landlord-1", request.ID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusInProgress, updated.Status)

	updated, err = svc.UpdateStatus(context.Background(), "landlord-1", request.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCompleted, updated.Status)

	published := dispatcher.published()
	require.Len(t, published, 3)
	change, ok := published[1].Payload.(events.RequestStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.RequestStatusOpen, change.OldStatus)
	assert.Equal(t, domain.RequestStatusInProgress, change.NewStatus)
}

func TestListForTenantFlagsOverdueRequests(t *testing.T) {
	svc, requests, _, _ := newMaintenanceFixture()

	request, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{Title: "Old leak"})
	require.NoError(t, err)
	requests.requests[request.ID].CreatedAt = time.Now().Add(-8 * 24 * time.Hour)

	views, err := svc.ListForTenant(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Overdue)
}

func TestGetForTenantRejectsForeignRequest(t *testing.T) {
	svc, _, _, _ := newMaintenanceFixture()

	request, err := svc.CreateRequest(context.Background(), "tenant-1", CreateRequestInput{Title: "Fence"})
	require.NoError(t, err)

	_, err = svc.GetForTenant(context.Background(), "tenant-2", request.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}
