package domain

import "time"

// PaymentStatus marks the stored state of a rent payment row.
type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "PAID"
)

// Payment methods recorded on rent payment rows.
const (
	PaymentMethodManual  = "MANUAL"
	PaymentMethodGateway = "GATEWAY"
)

// RentPayment is an append-only payment record against a lease.
type RentPayment struct {
	ID      string
	LeaseID string
	Amount  float64
	Month   int
	Year    int
	Status  PaymentStatus
	Method  string
	Note    *string
	PaidAt  time.Time
}

// ValidBillingMonth reports whether month is a calendar month number.
func ValidBillingMonth(month int) bool {
	return month >= 1 && month <= 12
}
