package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dealhunt/internal/service"
)

// MetaHandler handles the root banner and the static category/store lists.
type MetaHandler struct{}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// RootResponse represents the API banner.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// CategoriesResponse represents the static category and store lists.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Stores     []string `json:"stores"`
}

// Root godoc
// @Summary API banner
// @Tags meta
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *MetaHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{
		Message: "DealHunt API is running!",
		Version: "1.0.0",
	})
}

// Categories godoc
// @Summary Static category and store lists
// @Tags meta
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /categories [get]
func (h *MetaHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, CategoriesResponse{
		Categories: service.Categories,
		Stores:     service.Stores,
	})
}
