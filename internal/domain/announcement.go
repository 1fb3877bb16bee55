package domain

import "time"

// Announcement is a landlord notice shown to tenants under their leases.
type Announcement struct {
	ID         string
	LandlordID string
	Title      string
	Content    string
	IsActive   bool
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VisibleAt reports whether the announcement should be shown to tenants.
func (a *Announcement) VisibleAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.ExpiresAt != nil && !a.ExpiresAt.After(now) {
		return false
	}
	return true
}
