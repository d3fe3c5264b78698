package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dealhunt/internal/auth"
	"dealhunt/internal/config"
	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/handler"
	"dealhunt/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	offerHandler *handler.OfferHandler,
	savedOfferHandler *handler.SavedOfferHandler,
	adminHandler *handler.AdminHandler,
	metaHandler *handler.MetaHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Every error leaves as {"detail": "..."}.
	e.HTTPErrorHandler = httpErrorHandler

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireToken := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
		},
	})
	resolveUser := auth.CurrentUser(userRepo)

	api := e.Group("/api")

	// Public routes
	api.GET("", metaHandler.Root)
	api.GET("/", metaHandler.Root)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/offers", offerHandler.List)
	api.GET("/offers/:id", offerHandler.Get)
	api.GET("/categories", metaHandler.Categories)

	// Bearer routes (any authenticated user)
	bearer := api.Group("", requireToken, resolveUser)
	bearer.GET("/auth/me", authHandler.Me)
	bearer.POST("/offers/:id/save", savedOfferHandler.Save)
	bearer.DELETE("/offers/:id/save", savedOfferHandler.Unsave)
	bearer.GET("/users/saved-offers", savedOfferHandler.ListSaved)

	// Admin routes
	admin := api.Group("", requireToken, resolveUser, auth.RequireAdmin())
	admin.POST("/offers", offerHandler.Create)
	admin.PUT("/offers/:id", offerHandler.Update)
	admin.DELETE("/offers/:id", offerHandler.Delete)
	admin.GET("/admin/stats", adminHandler.Stats)
	admin.POST("/admin/seed-data", adminHandler.SeedData)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// httpErrorHandler renders every error as {"detail": string} with its status code.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "internal server error"

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		status = echoErr.Code
		switch msg := echoErr.Message.(type) {
		case string:
			detail = msg
		case apperrors.ErrorResponse:
			detail = msg.Detail
		case error:
			detail = msg.Error()
		default:
			detail = fmt.Sprintf("%v", msg)
		}
	} else {
		httpErr := apperrors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		detail = httpErr.Detail
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, apperrors.ErrorResponse{Detail: detail})
}
