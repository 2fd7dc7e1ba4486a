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

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// GeocodeHandler proxies forward-geocoding lookups for the widget's search box.
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
	logger    *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: params.GeocodeUC,
		logger:    params.Logger,
	}
}

// Geocode handles GET /api/geocode?address=...
func (h *GeocodeHandler) Geocode(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	result, err := h.geocodeUC.Geocode(c.Request().Context(), claims.SiteID, c.QueryParam("address"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "")
}
