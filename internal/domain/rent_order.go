package domain

import "time"

// RentOrderStatus enumerates gateway order lifecycle states.
type RentOrderStatus string

const (
	RentOrderStatusPending RentOrderStatus = "PENDING"
	RentOrderStatusPaid    RentOrderStatus = "PAID"
	RentOrderStatusFailed  RentOrderStatus = "FAILED"
)

// RentOrder links a payment-provider order to the billing period it charges.
type RentOrder struct {
	ID              string
	LeaseID         string
	Month           int
	Year            int
	Amount          float64
	ProviderOrderID string
	Status          RentOrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
