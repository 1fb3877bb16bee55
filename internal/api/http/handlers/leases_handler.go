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

// LeasesHandler manages tenant accounts and leases.
type LeasesHandler struct {
	leases *service.LeaseService
	auths  *service.AuthService
}

// NewLeasesHandler constructs handler.
func NewLeasesHandler(leaseService *service.LeaseService, authService *service.AuthService) *LeasesHandler {
	return &LeasesHandler{leases: leaseService, auths: authService}
}

// CreateTenant POST /landlord/tenants.
func (h *LeasesHandler) CreateTenant(c *fiber.Ctx) error {
	if _, authErr := auth.Authorize(c, domain.RoleLandlord); authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, err := h.auths.CreateTenant(c.Context(), req.FullName, req.Username, req.Password, req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToUserResponse(user)})
}

// ListTenants GET /landlord/tenants.
func (h *LeasesHandler) ListTenants(c *fiber.Ctx) error {
	if _, authErr := auth.Authorize(c, domain.RoleLandlord); authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	tenants, err := h.auths.ListTenants(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(tenants))
	for i := range tenants {
		items = append(items, dto.ToUserResponse(&tenants[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateLease POST /landlord/leases.
func (h *LeasesHandler) CreateLease(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req dto.LeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	lease, err := h.leases.CreateLease(c.Context(), principal.User.ID, leaseInput(req, true))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToLeaseResponse(lease)})
}

// UpdateLease PUT /landlord/leases/:id.
func (h *LeasesHandler) UpdateLease(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req dto.LeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	lease, err := h.leases.UpdateLease(c.Context(), principal.User.ID, c.Params("id"), leaseInput(req, true))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToLeaseResponse(lease)})
}

// DeactivateLease POST /landlord/leases/:id/deactivate.
func (h *LeasesHandler) DeactivateLease(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	lease, err := h.leases.DeactivateLease(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToLeaseResponse(lease)})
}

// ListLeases GET /landlord/leases.
func (h *LeasesHandler) ListLeases(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleLandlord)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	rows, err := h.leases.ListForLandlord(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.LeaseResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ToLeaseWithTenantResponse(row))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetMyLease GET /tenant/lease.
func (h *LeasesHandler) GetMyLease(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	lease, err := h.leases.CurrentForTenant(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToLeaseResponse(lease)})
}

func leaseInput(req dto.LeaseRequest, defaultActive bool) service.LeaseInput {
	active := defaultActive
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return service.LeaseInput{
		TenantID:    req.TenantID,
		MonthlyRent: req.MonthlyRent,
		DueDay:      req.DueDay,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    active,
	}
}
