package dto

import (
	"time"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// CreateAnnouncementRequest payload.
type CreateAnnouncementRequest struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// AnnouncementResponse is the public shape of an announcement.
type AnnouncementResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToAnnouncementResponse maps a domain announcement.
func ToAnnouncementResponse(announcement *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        announcement.ID,
		Title:     announcement.Title,
		Content:   announcement.Content,
		IsActive:  announcement.IsActive,
		ExpiresAt: announcement.ExpiresAt,
		CreatedAt: announcement.CreatedAt,
	}
}
