package domain

import (
	"fmt"
	"time"
)

// RequestStatus enumerates maintenance request lifecycle states.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "OPEN"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
)

// RequestPriority enumerates urgency levels.
type RequestPriority string

const (
	RequestPriorityLow       RequestPriority = "LOW"
	RequestPriorityNormal    RequestPriority = "NORMAL"
	RequestPriorityHigh      RequestPriority = "HIGH"
	RequestPriorityEmergency RequestPriority = "EMERGENCY"
)

// OverdueAfter is the age at which an unfinished request is flagged overdue.
const OverdueAfter = 7 * 24 * time.Hour

// MaintenanceRequest is a tenant-reported issue tracked by the landlord.
type MaintenanceRequest struct {
	ID          string
	TenantID    string
	Title       string
	Description string
	Status      RequestStatus
	Priority    RequestPriority
	Attachments []RequestAttachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RequestAttachment stores image metadata for a maintenance request.
type RequestAttachment struct {
	ID         string
	RequestID  string
	StorageKey string
	FileName   string
	MimeType   string
	SizeBytes  int64
	CreatedAt  time.Time
}

// ParseRequestStatus validates a status value against the closed set. The
// intended path is OPEN -> IN_PROGRESS -> COMPLETED, though the landlord may
// set any of the three directly; anything outside the set is rejected.
func ParseRequestStatus(value string) (RequestStatus, error) {
	switch RequestStatus(value) {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusCompleted:
		return RequestStatus(value), nil
	default:
		return "", fmt.Errorf("invalid request status %q", value)
	}
}

// ParseRequestPriority validates a priority value, defaulting empty to NORMAL.
func ParseRequestPriority(value string) (RequestPriority, error) {
	if value == "" {
		return RequestPriorityNormal, nil
	}
	switch RequestPriority(value) {
	case RequestPriorityLow, RequestPriorityNormal, RequestPriorityHigh, RequestPriorityEmergency:
		return RequestPriority(value), nil
	default:
		return "", fmt.Errorf("invalid request priority %q", value)
	}
}

// IsOverdue derives the overdue display flag at read time. Completed requests
// are never overdue regardless of age.
func IsOverdue(createdAt time.Time, status RequestStatus, now time.Time) bool {
	if status != RequestStatusOpen && status != RequestStatusInProgress {
		return false
	}
	return now.Sub(createdAt) >= OverdueAfter
}

// Overdue reports the request's derived overdue flag.
func (r *MaintenanceRequest) Overdue(now time.Time) bool {
	return IsOverdue(r.CreatedAt, r.Status, now)
}
