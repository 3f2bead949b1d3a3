package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/personal-cabinet/account-api/internal/core/domain"
	"github.com/personal-cabinet/account-api/internal/core/ports"
)

type stubProfileService struct {
	profileFn  func(ctx context.Context, userID string) (*domain.User, error)
	birthdayFn func(ctx context.Context, userID string, now time.Time) (*ports.BirthdayStatus, error)
}

func (s *stubProfileService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubProfileService) BirthdayCheck(ctx context.Context, userID string, now time.Time) (*ports.BirthdayStatus, error) {
	return s.birthdayFn(ctx, userID, now)
}

// injectUser stands in for the Auth middleware in handler tests.
func injectUser(user *domain.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetCtxUser(c, user)
			return next(c)
		}
	}
}

func TestUserHandler_Profile(t *testing.T) {
	user := &domain.User{
		ID:        "user-1",
		Email:     "alice@example.com",
		FullName:  "Alice",
		BirthDate: domain.NewDate(1990, time.March, 15),
	}
	stub := &stubProfileService{
		profileFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return user, nil
		},
	}

	e := echo.New()
	e.GET("/user/profile", NewUserHandler(stub).Profile, injectUser(user))

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	got := resp["user"]
	if got["email"] != "alice@example.com" || got["fullName"] != "Alice" || got["birthDate"] != "1990-03-15" {
		t.Fatalf("unexpected user payload: %+v", got)
	}
}

func TestUserHandler_Profile_NoAuthContext(t *testing.T) {
	stub := &stubProfileService{
		profileFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}

	e := echo.New()
	// Route registered without the auth middleware: must fail closed.
	e.GET("/user/profile", NewUserHandler(stub).Profile)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserHandler_BirthdayCheck(t *testing.T) {
	user := &domain.User{ID: "user-1", FullName: "Boris"}
	stub := &stubProfileService{
		birthdayFn: func(_ context.Context, userID string, _ time.Time) (*ports.BirthdayStatus, error) {
			return &ports.BirthdayStatus{IsBirthday: true, UserName: "Boris"}, nil
		},
	}

	e := echo.New()
	e.GET("/user/birthday-check", NewUserHandler(stub).BirthdayCheck, injectUser(user))

	req := httptest.NewRequest(http.MethodGet, "/user/birthday-check", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isBirthday"] != true || resp["userName"] != "Boris" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
