package ports

import (
	"context"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

// RegisterInput carries the resolved registration fields. ClientIP is
// best-effort request metadata used only for the audit entry.
type RegisterInput struct {
	UserName string
	Email    string
	Password string
	ClientIP string
}

// TokenPair is a freshly issued access/refresh token set.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}
