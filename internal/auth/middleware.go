package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
)

// currentUserKey is the context key under which CurrentUser stores the resolved user.
const currentUserKey = "currentUser"

// CurrentUser resolves the bearer token already verified by echo-jwt into a
// full user record and stores it in the request context. It fails with 401
// when the subject email maps to no user; store failures surface as server
// errors instead.
func CurrentUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
			}

			claims, ok := token.Claims.(*Claims)
			if !ok || claims.Subject == "" {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUserNotFound)
					return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
				}
				httpErr := apperrors.MapErrorToHTTP(fmt.Errorf("resolve user: %w", err))
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin gates admin-only routes. It must run after CurrentUser.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
			}
			if !user.IsAdmin {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrAdminRequired)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
			}
			return next(c)
		}
	}
}

// UserFromContext returns the user resolved by CurrentUser, if any.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(currentUserKey).(*model.User)
	return user, ok
}
