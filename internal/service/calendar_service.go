package service

import (
	"context"
	"sort"
	"time"
)

// CalendarService assembles the tenant dashboard calendar from lease dates,
// rent due dates and announcement expiries.
type CalendarService struct {
	rent          *RentService
	announcements *AnnouncementService
	now           func() time.Time
}

// Calendar event kinds.
const (
	CalendarKindRentDue            = "RENT_DUE"
	CalendarKindLeaseStart         = "LEASE_START"
	CalendarKindLeaseEnd           = "LEASE_END"
	CalendarKindAnnouncementExpiry = "ANNOUNCEMENT_EXPIRY"
)

// CalendarEvent is one dated entry on the tenant calendar.
type CalendarEvent struct {
	Kind  string    `json:"kind"`
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
}

// NewCalendarService constructs the service.
func NewCalendarService(rent *RentService, announcements *AnnouncementService) *CalendarService {
	return &CalendarService{rent: rent, announcements: announcements, now: time.Now}
}

// ForTenant builds the calendar for the given billing period. A zero period
// defaults to the current month.
func (s *CalendarService) ForTenant(ctx context.Context, tenantID string, month, year int) ([]CalendarEvent, error) {
	ledger, err := s.rent.TenantLedger(ctx, tenantID, month, year)
	if err != nil {
		return nil, err
	}

	events := []CalendarEvent{{
		Kind:  CalendarKindRentDue,
		Date:  ledger.DueDate,
		Title: "Rent due",
	}}
	if ledger.Lease.StartDate != nil {
		events = append(events, CalendarEvent{
			Kind:  CalendarKindLeaseStart,
			Date:  *ledger.Lease.StartDate,
			Title: "Lease starts",
		})
	}
	if ledger.Lease.EndDate != nil {
		events = append(events, CalendarEvent{
			Kind:  CalendarKindLeaseEnd,
			Date:  *ledger.Lease.EndDate,
			Title: "Lease ends",
		})
	}

	announcements, err := s.announcements.ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for _, announcement := range announcements {
		if announcement.ExpiresAt == nil {
			continue
		}
		events = append(events, CalendarEvent{
			Kind:  CalendarKindAnnouncementExpiry,
			Date:  *announcement.ExpiresAt,
			Title: announcement.Title,
		})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}
