package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/api/dto"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/auth"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/service"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

// MaintenanceHandler manages maintenance request endpoints.
type MaintenanceHandler struct {
	maintenance *service.MaintenanceService
}

// NewMaintenanceHandler constructs handler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenanceService}
}

// Create POST /tenant/requests.
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	attachments := make([]service.AttachmentInput, 0, len(req.Attachments))
	for _, in := range req.Attachments {
		attachments = append(attachments, service.AttachmentInput{
			StorageKey: in.StorageKey,
			FileName:   in.FileName,
			MimeType:   in.MimeType,
			SizeBytes:  in.SizeBytes,
		})
	}
	request, err := h.maintenance.CreateRequest(c.Context(), principal.User.ID, service.CreateRequestInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Attachments: attachments,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToMaintenanceRequestResponse(request, false)})
}

// ListMine GET /tenant/requests.
func (h *MaintenanceHandler) ListMine(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	views, err := h.maintenance.ListForTenant(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.MaintenanceRequestResponse, 0, len(views))
	for _, view := range views {
		items = append(items, dto.ToRequestViewResponse(view))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetMine GET /tenant/requests/:id.
func (h *MaintenanceHandler) GetMine(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	view, err := h.maintenance.GetForTenant(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToRequestViewResponse(*view)})
}

// ListForLandlord GET /landlord/requests.
func (h *MaintenanceHandler) ListForLandlord(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	views, err := h.maintenance.ListForLandlord(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.MaintenanceRequestResponse, 0, len(views))
	for _, view := range views {
		items = append(items, dto.ToLandlordRequestViewResponse(view))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /landlord/requests/:id/status.
func (h *MaintenanceHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req dto.UpdateRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.maintenance.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToMaintenanceRequestResponse(request, false)})
}
