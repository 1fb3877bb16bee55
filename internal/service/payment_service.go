package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/config"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

// PaymentService drives online rent collection through Razorpay.
type PaymentService struct {
	cfg    config.GatewayConfig
	client *razorpay.Client
	orders repository.RentOrderRepository
	leases repository.LeaseRepository
	rent   *RentService
	logger *zap.Logger
}

// PaymentDependencies bundles collaborators for payment service.
type PaymentDependencies struct {
	OrderRepo repository.RentOrderRepository
	LeaseRepo repository.LeaseRepository
	Rent      *RentService
	Logger    *zap.Logger
}

// CheckoutResponse carries what the client-side SDK needs to open checkout.
type CheckoutResponse struct {
	OrderID    string  `json:"order_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	GatewayKey string  `json:"gateway_key"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
}

// VerifyPaymentInput is the checkout callback posted by the client.
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

// NewPaymentService constructs the service. The Razorpay client is nil when
// gateway credentials are not configured; operations then refuse with a
// conflict instead of panicking.
func NewPaymentService(cfg config.GatewayConfig, deps PaymentDependencies) *PaymentService {
	svc := &PaymentService{
		cfg:    cfg,
		orders: deps.OrderRepo,
		leases: deps.LeaseRepo,
		rent:   deps.Rent,
		logger: deps.Logger,
	}
	if cfg.Enabled() {
		svc.client = razorpay.NewClient(cfg.Key, cfg.Secret)
	}
	return svc
}

// StartRentCharge creates a provider order for the tenant's outstanding rent
// and records a PENDING order row before any money moves.
func (s *PaymentService) StartRentCharge(ctx context.Context, tenantID string, month, year int) (*CheckoutResponse, error) {
	if s.client == nil {
		return nil, apperrors.NewConflict("payment gateway is not configured", nil)
	}

	ledger, err := s.rent.TenantLedger(ctx, tenantID, month, year)
	if err != nil {
		return nil, err
	}
	if ledger.Outstanding <= 0 {
		return nil, apperrors.NewConflict("rent is already settled for this period", map[string]any{
			"month": ledger.Month,
			"year":  ledger.Year,
		})
	}

	amountInPaise := int(math.Round(ledger.Outstanding * 100))
	data := map[string]interface{}{
		"amount":          amountInPaise,
		"currency":        s.cfg.Currency,
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"lease_id": ledger.Lease.ID,
			"month":    ledger.Month,
			"year":     ledger.Year,
		},
	}
	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok {
		return nil, errors.New("unable to extract order id from gateway response")
	}

	rentOrder := &domain.RentOrder{
		LeaseID:         ledger.Lease.ID,
		Month:           ledger.Month,
		Year:            ledger.Year,
		Amount:          ledger.Outstanding,
		ProviderOrderID: orderID,
		Status:          domain.RentOrderStatusPending,
	}
	if err := s.orders.Create(ctx, rentOrder); err != nil {
		return nil, err
	}

	s.logger.Info("rent charge started",
		zap.String("lease_id", ledger.Lease.ID),
		zap.String("provider_order_id", orderID),
		zap.Float64("amount", ledger.Outstanding),
	)
	return &CheckoutResponse{
		OrderID:    orderID,
		Amount:     ledger.Outstanding,
		Currency:   s.cfg.Currency,
		GatewayKey: s.cfg.Key,
		Month:      ledger.Month,
		Year:       ledger.Year,
	}, nil
}

// VerifyPayment validates the checkout signature, checks that the order
// belongs to one of the caller's leases, and settles it.
func (s *PaymentService) VerifyPayment(ctx context.Context, tenantID string, input VerifyPaymentInput) (*domain.RentPayment, error) {
	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return nil, apperrors.NewValidationError("order id, payment id and signature are required", nil)
	}
	if !VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, s.cfg.Secret) {
		return nil, apperrors.NewUnauthorized("invalid payment signature")
	}

	order, err := s.orders.GetByProviderOrderID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", map[string]any{"provider_order_id": input.OrderID})
		}
		return nil, err
	}
	lease, err := s.leases.GetByID(ctx, order.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease.TenantID != tenantID {
		return nil, apperrors.NewForbidden("access denied")
	}

	return s.settleOrder(ctx, input.OrderID, input.PaymentID)
}

// HandleWebhook processes provider webhook deliveries. Captured payments
// settle their order; failed payments mark it FAILED. Events for unknown or
// already-settled orders are acknowledged without effect.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if s.cfg.WebhookSecret == "" {
		return apperrors.NewConflict("webhook secret is not configured", nil)
	}
	if !VerifyWebhookSignature(body, signature, s.cfg.WebhookSecret) {
		return apperrors.NewUnauthorized("invalid webhook signature")
	}

	var event struct {
		Event   string `json:"event"`
		Payload struct {
			Payment struct {
				Entity struct {
					ID      string `json:"id"`
					OrderID string `json:"order_id"`
				} `json:"entity"`
			} `json:"payment"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		return apperrors.NewValidationError("malformed webhook payload", nil)
	}

	entity := event.Payload.Payment.Entity
	switch event.Event {
	case "payment.captured":
		if _, err := s.settleOrder(ctx, entity.OrderID, entity.ID); err != nil {
			var domainErr *apperrors.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == "CONFLICT" {
				s.logger.Info("webhook delivery for settled order",
					zap.String("provider_order_id", entity.OrderID))
				return nil
			}
			return err
		}
		return nil
	case "payment.failed":
		if err := s.orders.MarkFailed(ctx, entity.OrderID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return nil
	default:
		s.logger.Debug("ignoring webhook event", zap.String("event", event.Event))
		return nil
	}
}

// settleOrder flips the order to PAID and records the ledger payment.
// MarkPaid only matches PENDING rows, so the checkout callback and the
// webhook cannot both record the same payment.
func (s *PaymentService) settleOrder(ctx context.Context, providerOrderID, paymentID string) (*domain.RentPayment, error) {
	if err := s.orders.MarkPaid(ctx, providerOrderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflict("order already settled or unknown", map[string]any{
				"provider_order_id": providerOrderID,
			})
		}
		return nil, err
	}
	order, err := s.orders.GetByProviderOrderID(ctx, providerOrderID)
	if err != nil {
		return nil, err
	}

	note := fmt.Sprintf("gateway payment %s", paymentID)
	payment, err := s.rent.RecordGatewayPayment(ctx, order, &note)
	if err != nil {
		return nil, err
	}
	s.logger.Info("rent payment settled",
		zap.String("lease_id", order.LeaseID),
		zap.String("provider_order_id", providerOrderID),
		zap.Float64("amount", order.Amount),
	)
	return payment, nil
}

// VerifyPaymentSignature checks the checkout callback HMAC, which signs
// "<order_id>|<payment_id>" with the key secret.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the webhook HMAC, which signs the raw body
// with the webhook secret.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
