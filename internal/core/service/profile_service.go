package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-cabinet/account-api/internal/core/domain"
	"github.com/personal-cabinet/account-api/internal/core/ports"
)

// ProfileService serves the personal-account endpoints for an already
// authenticated user.
type ProfileService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewProfileService(users ports.UserRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, log: log}
}

func (s *ProfileService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

// BirthdayCheck reports whether now's calendar date matches the user's birth
// date, month and day only.
func (s *ProfileService) BirthdayCheck(ctx context.Context, userID string, now time.Time) (*ports.BirthdayStatus, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("birthday check: %w", err)
	}

	status := &ports.BirthdayStatus{
		IsBirthday: domain.IsBirthday(user.BirthDate, now),
		UserName:   user.FullName,
	}
	if status.IsBirthday {
		s.log.Debug().Str("user_id", user.ID).Msg("birthday greeting served")
	}
	return status, nil
}
