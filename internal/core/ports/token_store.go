package ports

import (
	"context"
	"time"
)

// TokenStore holds the currently valid refresh token per user. A stored
// token expires on its own TTL; rotation overwrites it.
type TokenStore interface {
	Save(ctx context.Context, userID, token string, ttl time.Duration) error
	Current(ctx context.Context, userID string) (string, error)
}
