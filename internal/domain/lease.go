package domain

import "time"

// Due day bounds keep the billing date valid in every month.
const (
	MinDueDay = 1
	MaxDueDay = 28
)

// Lease binds one tenant to one landlord at a fixed monthly rent.
type Lease struct {
	ID          string
	TenantID    string
	LandlordID  string
	MonthlyRent float64
	DueDay      int
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidDueDay reports whether day falls inside the clamped range.
func ValidDueDay(day int) bool {
	return day >= MinDueDay && day <= MaxDueDay
}

// DueDate resolves the lease's due date for a billing period.
func (l *Lease) DueDate(month, year int) time.Time {
	return time.Date(year, time.Month(month), l.DueDay, 0, 0, 0, 0, time.UTC)
}
