package handler

import (
	"github.com/personal-cabinet/account-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerStep1Request struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerStep1Response struct {
	TempToken string `json:"tempToken"`
}

type registerStep2Request struct {
	FullName  string      `json:"fullName"  validate:"required"`
	BirthDate domain.Date `json:"birthDate" validate:"required"`
	TempToken string      `json:"tempToken" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse is returned by login and by the final registration step.
// User serializes as {id, email, fullName, birthDate}; the hash is never
// part of the wire format.
type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

type birthdayCheckResponse struct {
	IsBirthday bool   `json:"isBirthday"`
	UserName   string `json:"userName"`
}
