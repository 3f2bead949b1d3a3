package ports

import (
	"context"
	"time"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

// BirthdayStatus is the result of checking whether today is a user's birthday.
type BirthdayStatus struct {
	IsBirthday bool
	UserName   string
}

// ProfileService exposes the authenticated user's personal-account data.
type ProfileService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// BirthdayCheck compares the user's birth date against the calendar date
	// of now (month and day, year ignored).
	BirthdayCheck(ctx context.Context, userID string, now time.Time) (*BirthdayStatus, error)
}
