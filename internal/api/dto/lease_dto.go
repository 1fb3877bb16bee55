package dto

import (
	"time"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
)

// LeaseRequest creates or updates a lease.
type LeaseRequest struct {
	TenantID    string     `json:"tenant_id"`
	MonthlyRent float64    `json:"monthly_rent"`
	DueDay      int        `json:"due_day"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    *bool      `json:"is_active"`
}

// LeaseResponse is the public shape of a lease.
type LeaseResponse struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenant_id"`
	TenantName     string     `json:"tenant_name,omitempty"`
	TenantUsername string     `json:"tenant_username,omitempty"`
	MonthlyRent    float64    `json:"monthly_rent"`
	DueDay         int        `json:"due_day"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToLeaseResponse maps a domain lease.
func ToLeaseResponse(lease *domain.Lease) LeaseResponse {
	return LeaseResponse{
		ID:          lease.ID,
		TenantID:    lease.TenantID,
		MonthlyRent: lease.MonthlyRent,
		DueDay:      lease.DueDay,
		StartDate:   lease.StartDate,
		EndDate:     lease.EndDate,
		IsActive:    lease.IsActive,
		CreatedAt:   lease.CreatedAt,
		UpdatedAt:   lease.UpdatedAt,
	}
}

// ToLeaseWithTenantResponse maps a landlord listing row.
func ToLeaseWithTenantResponse(row repository.LeaseWithTenant) LeaseResponse {
	resp := ToLeaseResponse(&row.Lease)
	resp.TenantName = row.TenantName
	resp.TenantUsername = row.TenantUsername
	return resp
}
