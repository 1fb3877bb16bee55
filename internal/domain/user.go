package domain

import "time"

// Role enumerates the two fixed account roles.
type Role string

const (
	RoleTenant   Role = "TENANT"
	RoleLandlord Role = "LANDLORD"
)

// User is the domain model for tenant and landlord accounts.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	FullName     string
	Email        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
