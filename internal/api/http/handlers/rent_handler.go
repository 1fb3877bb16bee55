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

// RentHandler serves rent ledgers, manual payments and the landlord overview.
type RentHandler struct {
	rent        *service.RentService
	maintenance *service.MaintenanceService
}

// NewRentHandler constructs handler.
func NewRentHandler(rentService *service.RentService, maintenanceService *service.MaintenanceService) *RentHandler {
	return &RentHandler{rent: rentService, maintenance: maintenanceService}
}

// GetLedger GET /tenant/rent.
func (h *RentHandler) GetLedger(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	ledger, err := h.rent.TenantLedger(c.Context(), principal.User.ID, c.QueryInt("month"), c.QueryInt("year"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToLedgerResponse(ledger)})
}

// RecordPayment POST /tenant/rent/payments.
func (h *RentHandler) RecordPayment(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req dto.ManualPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	payment, err := h.rent.RecordManualPayment(c.Context(), principal.User.ID, service.ManualPaymentInput{
		Amount: req.Amount,
		Month:  req.Month,
		Year:   req.Year,
		Note:   req.Note,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToPaymentResponse(payment)})
}

// RecentMine GET /tenant/rent/payments.
func (h *RentHandler) RecentMine(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	payments, err := h.rent.RecentForTenant(c.Context(), principal.User.ID, c.QueryInt("limit"))
	if err != nil {
		return err
	}
	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, dto.ToPaymentResponse(&payments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Overview GET /landlord/rent/overview.
func (h *RentHandler) Overview(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	overview, err := h.rent.LandlordOverview(c.Context(), principal.User.ID, c.QueryInt("month"), c.QueryInt("year"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToOverviewResponse(overview)})
}

// Dashboard GET /landlord/dashboard. Combines the period's unpaid lease
// count with the open maintenance request count.
func (h *RentHandler) Dashboard(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	overview, err := h.rent.LandlordOverview(c.Context(), principal.User.ID, c.QueryInt("month"), c.QueryInt("year"))
	if err != nil {
		return err
	}
	openRequests, err := h.maintenance.CountOpenForLandlord(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"month":         overview.Month,
		"year":          overview.Year,
		"active_leases": len(overview.Entries),
		"unpaid_count":  overview.UnpaidCount,
		"open_requests": openRequests,
	}})
}

// RecentPayments GET /landlord/rent/payments.
func (h *RentHandler) RecentPayments(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	rows, err := h.rent.RecentForLandlord(c.Context(), principal.User.ID, c.QueryInt("limit"))
	if err != nil {
		return err
	}
	items := make([]dto.PaymentResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ToPaymentWithTenantResponse(row))
	}
	return c.JSON(fiber.Map{"data": items})
}
