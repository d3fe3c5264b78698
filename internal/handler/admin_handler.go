package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/service"
)

// AdminHandler handles admin stats and seed endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats godoc
// @Summary Get dashboard counters (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, stats)
}

// SeedData godoc
// @Summary Seed sample offers (admin only)
// @Description No-op when offers already exist.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/seed-data [post]
func (h *AdminHandler) SeedData(c echo.Context) error {
	seeded, err := h.adminService.SeedOffers(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}

	if seeded == 0 {
		return c.JSON(http.StatusOK, MessageResponse{Message: "Data already exists"})
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Seeded %d sample offers", seeded)})
}
