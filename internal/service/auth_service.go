package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MrCakeguy123/tenant-landlord-app/internal/auth"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/config"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/domain"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
	apperrors "github.com/MrCakeguy123/tenant-landlord-app/pkg/util"
)

// AuthService coordinates account setup and login flows.
type AuthService struct {
	users      repository.UserRepository
	sessions   *auth.SessionStore
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	SessionStore *auth.SessionStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionStore,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SetupLandlord creates the first landlord account. It is rejected once any
// user exists.
func (s *AuthService) SetupLandlord(ctx context.Context, fullName, username, password string) (*domain.User, error) {
	count, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.NewConflict("setup has already been completed", nil)
	}
	return s.createUser(ctx, domain.RoleLandlord, fullName, username, password, nil)
}

// CreateTenant creates a tenant account on behalf of a landlord.
func (s *AuthService) CreateTenant(ctx context.Context, fullName, username, password string, email *string) (*domain.User, error) {
	return s.createUser(ctx, domain.RoleTenant, fullName, username, password, email)
}

func (s *AuthService) createUser(ctx context.Context, role domain.Role, fullName, username, password string, email *string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflict("username already taken", map[string]any{"username": username})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and opens a revocable session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, tokenID, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if s.sessions != nil {
		if err := s.sessions.Save(ctx, tokenID, user.ID, s.tokenMgr.TTL()); err != nil {
			return nil, "", time.Time{}, err
		}
	}
	return user, token, exp, nil
}

// Logout revokes the caller's session.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(ctx, tokenID)
}

// ChangePassword verifies the current password before updating to a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return apperrors.NewValidationError("new password required", nil)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// ListTenants returns all tenant accounts.
func (s *AuthService) ListTenants(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleTenant)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
