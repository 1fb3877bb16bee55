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

// AnnouncementsHandler manages announcement and tenant calendar endpoints.
type AnnouncementsHandler struct {
	announcements *service.AnnouncementService
	calendar      *service.CalendarService
}

// NewAnnouncementsHandler constructs handler.
func NewAnnouncementsHandler(announcementService *service.AnnouncementService, calendarService *service.CalendarService) *AnnouncementsHandler {
	return &AnnouncementsHandler{announcements: announcementService, calendar: calendarService}
}

// Publish POST /landlord/announcements.
func (h *AnnouncementsHandler) Publish(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	announcement, err := h.announcements.Publish(c.Context(), principal.User.ID, service.AnnouncementInput{
		Title:     req.Title,
		Content:   req.Content,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToAnnouncementResponse(announcement)})
}

// Deactivate POST /landlord/announcements/:id/deactivate.
func (h *AnnouncementsHandler) Deactivate(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	announcement, err := h.announcements.Deactivate(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToAnnouncementResponse(announcement)})
}

// ListForLandlord GET /landlord/announcements.
func (h *AnnouncementsHandler) ListForLandlord(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	announcements, err := h.announcements.ListForLandlord(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": announcementList(announcements)})
}

// ListForTenant GET /tenant/announcements.
func (h *AnnouncementsHandler) ListForTenant(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	announcements, err := h.announcements.ListForTenant(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": announcementList(announcements)})
}

// Calendar GET /tenant/calendar.
func (h *AnnouncementsHandler) Calendar(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	events, err := h.calendar.ForTenant(c.Context(), principal.User.ID, c.QueryInt("month"), c.QueryInt("year"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": events})
}

func announcementList(announcements []domain.Announcement) []dto.AnnouncementResponse {
	items := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		items = append(items, dto.ToAnnouncementResponse(&announcements[i]))
	}
	return items
}
