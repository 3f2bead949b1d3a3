package ports

import (
	"context"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

// AuthService implements the two-step registration flow, login, and session
// validation.
type AuthService interface {
	// BeginRegistration runs step 1 and returns the intermediate token the
	// caller must present to CompleteRegistration.
	BeginRegistration(ctx context.Context, email, password string) (tempToken string, err error)
	// CompleteRegistration runs step 2: consumes the intermediate token,
	// creates the user, and returns a session token with the new profile.
	CompleteRegistration(ctx context.Context, fullName string, birthDate domain.Date, tempToken string) (token string, user *domain.User, err error)
	// Authenticate verifies email/password and returns a session token.
	Authenticate(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	// ValidateSession verifies a session token and confirms the referenced
	// user still exists. Any failure is an error; callers that only need a
	// yes/no answer collapse it to false.
	ValidateSession(ctx context.Context, token string) (*domain.User, error)
}
