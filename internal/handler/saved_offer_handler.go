package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dealhunt/internal/auth"
	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/service"
)

// SavedOfferHandler handles the save/unsave/list-saved endpoints.
type SavedOfferHandler struct {
	savedOfferService service.SavedOfferService
}

// NewSavedOfferHandler creates a new saved-offer handler.
func NewSavedOfferHandler(savedOfferService service.SavedOfferService) *SavedOfferHandler {
	return &SavedOfferHandler{savedOfferService: savedOfferService}
}

// Save godoc
// @Summary Save an offer for the authenticated user
// @Tags saved-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id}/save [post]
func (h *SavedOfferHandler) Save(c echo.Context) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}

	if err := h.savedOfferService.Save(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Offer saved successfully"})
}

// Unsave godoc
// @Summary Remove a saved offer for the authenticated user
// @Tags saved-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id}/save [delete]
func (h *SavedOfferHandler) Unsave(c echo.Context) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}

	if err := h.savedOfferService.Unsave(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Offer unsaved successfully"})
}

// ListSaved godoc
// @Summary List the authenticated user's saved offers
// @Tags saved-offers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Offer
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/saved-offers [get]
func (h *SavedOfferHandler) ListSaved(c echo.Context) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}

	offers, err := h.savedOfferService.ListSaved(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, offers)
}
