package handler

import (
	"log/slog"
	"net/http"

	"locator/internal/delivery/http/middleware"
	"locator/internal/delivery/http/response"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the widget's location list.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// GetLocations handles GET /api/locations. Site and collection scope come
// from the widget token claims; query parameters are ignored for scoping.
func (h *LocationHandler) GetLocations(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	locations, err := h.locationUC.GetLocations(c.Request().Context(), claims.SiteID, claims.CollectionID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, locations, "")
}
