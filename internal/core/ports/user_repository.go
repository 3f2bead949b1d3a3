package ports

import (
	"context"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

// UserRepository defines persistence for finalized user accounts. It is the
// only owner of user rows; email uniqueness is enforced at this layer.
type UserRepository interface {
	// Create persists a new user and returns it with the generated ID.
	// Returns domain.ErrEmailTaken when the (normalized) email already exists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks a user up by normalized email.
	// Returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID looks a user up by ID. Returns domain.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdatePassword replaces the stored password hash. Callers must pass a
	// freshly computed hash, never a raw password.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
