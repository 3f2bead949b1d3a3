package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/personal-cabinet/account-api/internal/core/domain"
	"github.com/personal-cabinet/account-api/internal/core/ports"
)

// hashCost is the fixed bcrypt work factor for stored passwords. Not tunable
// per call: latency is traded for hash strength once, globally.
const hashCost = 12

// dummyHash is a structurally valid bcrypt hash compared against on logins
// for unknown emails, so a missing user costs the same as a wrong password.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthService drives the registration state machine
// (NoRegistration → Step1Complete → Finalized) plus login and session checks.
// Step1Complete has no explicit record: it is the existence of a valid
// intermediate token together with a matching pending-store entry.
type AuthService struct {
	users   ports.UserRepository
	pending ports.PendingStore
	tokens  *TokenService
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, pending ports.PendingStore, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, pending: pending, tokens: tokens, log: log}
}

// BeginRegistration runs step 1. Input grammar (email shape, password length)
// is validated at the transport edge; this layer enforces uniqueness and
// creates the two paired artifacts: the intermediate token and the pending
// entry keyed by it.
func (s *AuthService) BeginRegistration(ctx context.Context, email, password string) (string, error) {
	email = domain.NormalizeEmail(email)

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", fmt.Errorf("begin registration: %w", err)
	}

	token, err := s.tokens.MintIntermediate(email, password)
	if err != nil {
		return "", fmt.Errorf("begin registration: mint token: %w", err)
	}

	reg := domain.PendingRegistration{Email: email, Password: password}
	if err := s.pending.Set(ctx, token, reg, s.tokens.IntermediateTTL()); err != nil {
		return "", fmt.Errorf("begin registration: store pending entry: %w", err)
	}

	s.log.Info().Str("email", email).Msg("registration step 1 complete")
	return token, nil
}

// CompleteRegistration runs step 2 and finalizes the account.
func (s *AuthService) CompleteRegistration(ctx context.Context, fullName string, birthDate domain.Date, tempToken string) (string, *domain.User, error) {
	// 1. The token must verify and belong to step 1.
	claimed, err := s.tokens.ParseIntermediate(tempToken)
	if err != nil {
		return "", nil, err
	}

	// 2. The paired pending entry must still exist: absent means step 1 was
	// never run for this token or the token was already consumed.
	reg, err := s.pending.Get(ctx, tempToken)
	if err != nil {
		return "", nil, fmt.Errorf("complete registration: pending lookup: %w", err)
	}
	if reg == nil {
		return "", nil, domain.ErrRegistrationNotStarted
	}

	// 3. Create the user; the password is hashed only here. A concurrent
	// completion for the same email loses on the unique index and surfaces
	// as ErrEmailTaken, never as a second user.
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), hashCost)
	if err != nil {
		return "", nil, fmt.Errorf("complete registration: hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        reg.Email,
		PasswordHash: string(hash),
		FullName:     fullName,
		BirthDate:    birthDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	// 4. Consume the pending entry: a replay of the same token now fails
	// with ErrRegistrationNotStarted. Deletion failure is non-fatal, the
	// unique email index already made the completion at-most-once.
	if err := s.pending.Delete(ctx, tempToken); err != nil {
		s.log.Warn().Err(err).Str("email", claimed.Email).Msg("failed to delete pending registration")
	}

	// 5. Issue the session for the new account.
	token, err := s.tokens.MintSession(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("complete registration: mint session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("registration finalized")
	return token, user, nil
}

// Authenticate verifies credentials and issues a session token. Unknown
// email and wrong password return the same error after comparable work, so
// the response leaks neither existence nor timing.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.MintSession(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("authenticate: mint session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// ValidateSession verifies the token and confirms the user still exists.
// Callers that only need "authenticated or not" treat any error as not
// authenticated; the error value still distinguishes a bad token from a
// store fault for logging.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.ParseSession(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("validate session: %w", err)
	}
	return user, nil
}
