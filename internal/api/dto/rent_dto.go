package dto

import (
	"time"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/service"
)

// ManualPaymentRequest records an offline payment.
type ManualPaymentRequest struct {
	Amount float64 `json:"amount"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Note   *string `json:"note"`
}

// PaymentResponse is one ledger row.
type PaymentResponse struct {
	ID             string    `json:"id"`
	LeaseID        string    `json:"lease_id"`
	Amount         float64   `json:"amount"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	Status         string    `json:"status"`
	Method         string    `json:"method"`
	Note           *string   `json:"note,omitempty"`
	PaidAt         time.Time `json:"paid_at"`
	TenantName     string    `json:"tenant_name,omitempty"`
	TenantUsername string    `json:"tenant_username,omitempty"`
}

// LedgerResponse is the evaluated rent state for one billing period.
type LedgerResponse struct {
	LeaseID     string            `json:"lease_id"`
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	MonthlyRent float64           `json:"monthly_rent"`
	PaidTotal   float64           `json:"paid_total"`
	Outstanding float64           `json:"outstanding"`
	State       domain.RentState  `json:"state"`
	DueDate     time.Time         `json:"due_date"`
	Payments    []PaymentResponse `json:"payments"`
}

// OverviewEntryResponse is one lease row in the landlord overview.
type OverviewEntryResponse struct {
	LeaseID        string           `json:"lease_id"`
	TenantName     string           `json:"tenant_name"`
	TenantUsername string           `json:"tenant_username"`
	MonthlyRent    float64          `json:"monthly_rent"`
	DueDay         int              `json:"due_day"`
	PaidAmount     float64          `json:"paid_amount"`
	Outstanding    float64          `json:"outstanding"`
	State          domain.RentState `json:"state"`
}

// OverviewResponse aggregates active leases for a billing period.
type OverviewResponse struct {
	Month       int                     `json:"month"`
	Year        int                     `json:"year"`
	Entries     []OverviewEntryResponse `json:"entries"`
	UnpaidCount int                     `json:"unpaid_count"`
}

// ToPaymentResponse maps a domain payment.
func ToPaymentResponse(payment *domain.RentPayment) PaymentResponse {
	return PaymentResponse{
		ID:      payment.ID,
		LeaseID: payment.LeaseID,
		Amount:  payment.Amount,
		Month:   payment.Month,
		Year:    payment.Year,
		Status:  string(payment.Status),
		Method:  payment.Method,
		Note:    payment.Note,
		PaidAt:  payment.PaidAt,
	}
}

// ToPaymentWithTenantResponse maps a landlord payment row.
func ToPaymentWithTenantResponse(row repository.PaymentWithTenant) PaymentResponse {
	resp := ToPaymentResponse(&row.RentPayment)
	resp.TenantName = row.TenantName
	resp.TenantUsername = row.TenantUsername
	return resp
}

// ToLedgerResponse maps an evaluated ledger.
func ToLedgerResponse(ledger *service.RentLedger) LedgerResponse {
	payments := make([]PaymentResponse, 0, len(ledger.Payments))
	for i := range ledger.Payments {
		payments = append(payments, ToPaymentResponse(&ledger.Payments[i]))
	}
	return LedgerResponse{
		LeaseID:     ledger.Lease.ID,
		Month:       ledger.Month,
		Year:        ledger.Year,
		MonthlyRent: ledger.Lease.MonthlyRent,
		PaidTotal:   ledger.PaidTotal,
		Outstanding: ledger.Outstanding,
		State:       ledger.State,
		DueDate:     ledger.DueDate,
		Payments:    payments,
	}
}

// ToOverviewResponse maps the landlord rent overview.
func ToOverviewResponse(overview *service.RentOverview) OverviewResponse {
	entries := make([]OverviewEntryResponse, 0, len(overview.Entries))
	for _, entry := range overview.Entries {
		entries = append(entries, OverviewEntryResponse{
			LeaseID:        entry.LeaseID,
			TenantName:     entry.TenantName,
			TenantUsername: entry.TenantUsername,
			MonthlyRent:    entry.MonthlyRent,
			DueDay:         entry.DueDay,
			PaidAmount:     entry.PaidAmount,
			Outstanding:    entry.Outstanding,
			State:          entry.State,
		})
	}
	return OverviewResponse{
		Month:       overview.Month,
		Year:        overview.Year,
		Entries:     entries,
		UnpaidCount: overview.UnpaidCount,
	}
}
