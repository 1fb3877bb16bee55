package dto

import (
	"time"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
)

// SetupRequest creates the initial landlord account.
type SetupRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTenantRequest payload.
type CreateTenantRequest struct {
	FullName string  `json:"full_name"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and its expiry.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID        string      `json:"id"`
	FullName  string      `json:"full_name"`
	Username  string      `json:"username"`
	Email     *string     `json:"email,omitempty"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// ToUserResponse maps a domain user.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
