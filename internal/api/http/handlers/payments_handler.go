package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/api/dto"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/auth"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/service"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

// PaymentsHandler serves gateway checkout and webhook endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
	logger   *zap.Logger
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService, logger: logger}
}

// Checkout POST /tenant/rent/checkout.
func (h *PaymentsHandler) Checkout(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	checkout, err := h.payments.StartRentCharge(c.Context(), principal.User.ID, req.Month, req.Year)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": checkout})
}

// Verify POST /tenant/rent/checkout/verify.
func (h *PaymentsHandler) Verify(c *fiber.Ctx) error {
	principal, authErr := auth.Authorize(c, domain.RoleTenant)
	if authErr != nil {
		return apperrors.NewForbidden(authErr.Reason)
	}
	var req struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
		Signature string `json:"signature"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	payment, err := h.payments.VerifyPayment(c.Context(), principal.User.ID, service.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToPaymentResponse(payment)})
}

// Webhook POST /webhooks/razorpay. The provider gets a generic response
// either way; details stay in the logs.
func (h *PaymentsHandler) Webhook(c *fiber.Ctx) error {
	signature := c.Get("X-Razorpay-Signature")
	if err := h.payments.HandleWebhook(c.Context(), c.Body(), signature); err != nil {
		h.logger.Warn("webhook processing failed", zap.Error(err))
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "rejected"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
