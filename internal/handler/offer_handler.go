package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
	"dealhunt/internal/service"
)

// OfferHandler handles offer endpoints.
type OfferHandler struct {
	offerService service.OfferService
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// MessageResponse represents a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// OfferCreateRequest represents the create/update payload for an offer.
type OfferCreateRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description" validate:"required"`
	DiscountPercentage int        `json:"discount_percentage" validate:"gte=0,lte=100"`
	OriginalPrice      *float64   `json:"original_price"`
	DiscountedPrice    *float64   `json:"discounted_price"`
	Store              string     `json:"store" validate:"required"`
	Category           string     `json:"category" validate:"required"`
	ProductImage       string     `json:"product_image" validate:"required,url"`
	OfferLink          string     `json:"offer_link" validate:"required,url"`
	ExpiryDate         *time.Time `json:"expiry_date"`
}

func (r *OfferCreateRequest) toModel() *model.Offer {
	return &model.Offer{
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		OriginalPrice:      r.OriginalPrice,
		DiscountedPrice:    r.DiscountedPrice,
		Store:              r.Store,
		Category:           r.Category,
		ProductImage:       r.ProductImage,
		OfferLink:          r.OfferLink,
		ExpiryDate:         r.ExpiryDate,
	}
}

// List godoc
// @Summary List active offers
// @Tags offers
// @Produce json
// @Param store query string false "Filter by store"
// @Param category query string false "Filter by category"
// @Param search query string false "Case-insensitive match on title or description"
// @Param limit query int false "Result cap (default 50)"
// @Success 200 {array} model.Offer
// @Failure 500 {object} errors.ErrorResponse
// @Router /offers [get]
func (h *OfferHandler) List(c echo.Context) error {
	filter := repository.OfferFilter{
		Store:    c.QueryParam("store"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}

	offers, err := h.offerService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, offers)
}

// Get godoc
// @Summary Get an offer by ID
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} model.Offer
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c echo.Context) error {
	offer, err := h.offerService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, offer)
}

// Create godoc
// @Summary Create an offer (admin only)
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OfferCreateRequest true "Offer data"
// @Success 200 {object} model.Offer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /offers [post]
func (h *OfferHandler) Create(c echo.Context) error {
	var req OfferCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer := req.toModel()
	if err := h.offerService.Create(c.Request().Context(), offer); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, offer)
}

// Update godoc
// @Summary Replace an offer (admin only)
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body OfferCreateRequest true "Offer data"
// @Success 200 {object} model.Offer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(c echo.Context) error {
	var req OfferCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer := req.toModel()
	if err := h.offerService.Update(c.Request().Context(), c.Param("id"), offer); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, offer)
}

// Delete godoc
// @Summary Delete an offer (admin only)
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(c echo.Context) error {
	if err := h.offerService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Offer deleted successfully"})
}
