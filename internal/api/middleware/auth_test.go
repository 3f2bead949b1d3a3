package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

type stubAuthService struct {
	validateFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) BeginRegistration(context.Context, string, string) (string, error) {
	return "", nil
}

func (s *stubAuthService) CompleteRegistration(context.Context, string, domain.Date, string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Authenticate(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	return s.validateFn(ctx, token)
}

func newProtectedServer(stub *stubAuthService, saw **domain.User) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		if user, ok := c.Get("user").(*domain.User); ok {
			*saw = user
		}
		return c.NoContent(http.StatusOK)
	}, Auth(stub))
	return e
}

func TestAuth_ValidToken(t *testing.T) {
	want := &domain.User{ID: "user-1", Email: "alice@example.com"}
	stub := &stubAuthService{
		validateFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return want, nil
		},
	}

	var saw *domain.User
	e := newProtectedServer(stub, &saw)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if saw == nil || saw.ID != "user-1" {
		t.Fatalf("handler did not receive the user: %+v", saw)
	}
}

func TestAuth_Rejections(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrTokenInvalid
		},
	}

	var saw *domain.User
	e := newProtectedServer(stub, &saw)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"malformed header", "Bearer"},
		{"invalid token", "Bearer bad-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
