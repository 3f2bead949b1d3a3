package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

const (
	// DefaultIntermediateTTL bounds how long a user may take between the two
	// registration steps.
	DefaultIntermediateTTL = 15 * time.Minute
	// DefaultSessionTTL is the lifetime of a login session.
	DefaultSessionTTL = 24 * time.Hour

	registrationStep1 = 1
)

// intermediateClaims is the payload of a step-1 token. It carries the raw
// registration input so step 2 can be served by any process sharing the
// signing secret. Carrying the password in the claims is a known trade-off of
// the protocol; the pending store holds the same pair server-side so step 2
// validates both artifacts independently.
type intermediateClaims struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Step     int    `json:"step"`
	jwt.RegisteredClaims
}

// sessionClaims identifies an authenticated user.
type sessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies the two token kinds used by the
// registration and login flows. It is stateless: everything a token asserts
// is inside its signed claims.
type TokenService struct {
	secret          []byte
	intermediateTTL time.Duration
	sessionTTL      time.Duration
}

// NewTokenService builds a TokenService signing with secret. Non-positive
// TTLs fall back to the defaults.
func NewTokenService(secret string, intermediateTTL, sessionTTL time.Duration) *TokenService {
	if intermediateTTL <= 0 {
		intermediateTTL = DefaultIntermediateTTL
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &TokenService{
		secret:          []byte(secret),
		intermediateTTL: intermediateTTL,
		sessionTTL:      sessionTTL,
	}
}

// IntermediateTTL reports the lifetime of step-1 tokens, so the pending store
// entry can expire in lockstep with its token.
func (s *TokenService) IntermediateTTL() time.Duration {
	return s.intermediateTTL
}

// MintIntermediate issues a step-1 token carrying the registration input.
func (s *TokenService) MintIntermediate(email, password string) (string, error) {
	now := time.Now()
	claims := intermediateClaims{
		Email:    email,
		Password: password,
		Step:     registrationStep1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.intermediateTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseIntermediate verifies a step-1 token and returns the registration data
// it carries. Signature or expiry failures yield domain.ErrTokenInvalid; a
// structurally valid token whose step claim is not 1 (e.g. a session token)
// yields domain.ErrWrongTokenPhase.
func (s *TokenService) ParseIntermediate(token string) (*domain.PendingRegistration, error) {
	var claims intermediateClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, s.keyFunc)
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if claims.Step != registrationStep1 {
		return nil, domain.ErrWrongTokenPhase
	}
	return &domain.PendingRegistration{Email: claims.Email, Password: claims.Password}, nil
}

// MintSession issues a session token for the given user.
func (s *TokenService) MintSession(userID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseSession verifies a session token and returns the user ID it names.
// Any failure, including an intermediate token presented as a session, yields
// domain.ErrTokenInvalid.
func (s *TokenService) ParseSession(token string) (string, error) {
	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, s.keyFunc)
	if err != nil || !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}
	if claims.UserID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.UserID, nil
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}
