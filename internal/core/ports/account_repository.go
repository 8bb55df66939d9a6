package ports

import (
	"context"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

// AccountRepository defines the persistence contract for user records.
// FindByEmail expects an already-normalized email.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
