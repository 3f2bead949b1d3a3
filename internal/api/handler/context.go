package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

// userContextKey is where the Auth middleware stores the authenticated user.
const userContextKey = "user"

// ctxUser extracts the user injected by the Auth middleware. Its absence
// means the route was registered without the middleware; fail closed.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// SetCtxUser stores the authenticated user on the request context. Called by
// the Auth middleware; exported for tests exercising handlers directly.
func SetCtxUser(c echo.Context, user *domain.User) {
	c.Set(userContextKey, user)
}
