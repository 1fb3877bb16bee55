package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps one redis record per issued token so that logout
// actually revokes: middleware rejects tokens whose record is gone.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps a redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}

// Save records the session with the token's remaining lifetime.
func (s *SessionStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(tokenID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Exists reports whether the session is still live.
func (s *SessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	_, err := s.client.Get(ctx, sessionKey(tokenID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get session: %w", err)
	}
	return true, nil
}

// Delete revokes the session.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, sessionKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
