package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/personal-cabinet/account-api/internal/core/ports"
)

type UserHandler struct {
	profile ports.ProfileService
}

func NewUserHandler(profile ports.ProfileService) *UserHandler {
	return &UserHandler{profile: profile}
}

// Profile returns the authenticated user's account data.
//
// @Summary      Get the current user's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	fresh, err := h.profile.Profile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: fresh})
}

// BirthdayCheck reports whether today is the authenticated user's birthday.
// "Today" is the server's local calendar date.
//
// @Summary      Check whether today is the user's birthday
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  birthdayCheckResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/birthday-check [get]
func (h *UserHandler) BirthdayCheck(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	status, err := h.profile.BirthdayCheck(c.Request().Context(), user.ID, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, birthdayCheckResponse{
		IsBirthday: status.IsBirthday,
		UserName:   status.UserName,
	})
}
