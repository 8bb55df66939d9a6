package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

// TokenStore keeps the currently valid refresh token per user.
// Key format: refresh:<user_id>
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save records token as the user's current refresh token. Overwriting
// revokes whatever was stored before; expiry follows the token TTL.
func (s *TokenStore) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// Current returns the stored refresh token for the user, or
// domain.ErrInvalidToken when none is stored.
func (s *TokenStore) Current(ctx context.Context, userID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return "", domain.ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("load refresh token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) key(userID string) string {
	return "refresh:" + userID
}
