package events

import (
	"time"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeaseCreated          EventType = "lease_created"
	EventRentPaymentRecorded   EventType = "rent_payment_recorded"
	EventRequestCreated        EventType = "maintenance_request_created"
	EventRequestStatusChanged  EventType = "maintenance_request_status_changed"
	EventAnnouncementPublished EventType = "announcement_published"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role   domain.Role `json:"role"`
	UserID string      `json:"user_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeaseCreatedPayload payload.
type LeaseCreatedPayload struct {
	TenantID    string  `json:"tenant_id"`
	LandlordID  string  `json:"landlord_id"`
	MonthlyRent float64 `json:"monthly_rent"`
	DueDay      int     `json:"due_day"`
}

// RentPaymentRecordedPayload payload.
type RentPaymentRecordedPayload struct {
	LeaseID string  `json:"lease_id"`
	Amount  float64 `json:"amount"`
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Method  string  `json:"method"`
}

// RequestCreatedPayload payload.
type RequestCreatedPayload struct {
	TenantID string                 `json:"tenant_id"`
	Title    string                 `json:"title"`
	Priority domain.RequestPriority `json:"priority"`
}

// RequestStatusChangedPayload payload.
type RequestStatusChangedPayload struct {
	OldStatus domain.RequestStatus `json:"old_status"`
	NewStatus domain.RequestStatus `json:"new_status"`
}

// AnnouncementPublishedPayload payload.
type AnnouncementPublishedPayload struct {
	LandlordID string     `json:"landlord_id"`
	Title      string     `json:"title"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}
