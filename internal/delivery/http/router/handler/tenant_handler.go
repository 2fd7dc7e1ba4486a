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

// TenantHandlerParams holds dependencies for TenantHandler, injected by Fx.
type TenantHandlerParams struct {
	fx.In

	TenantUC usecase.TenantUsecase
	Logger   *slog.Logger
}

// TenantHandler serves the setup surface: widget token minting, map key and
// collection binding, collection listing and map configuration.
type TenantHandler struct {
	tenantUC usecase.TenantUsecase
	logger   *slog.Logger
}

// NewTenantHandler is the constructor for TenantHandler
func NewTenantHandler(params TenantHandlerParams) *TenantHandler {
	return &TenantHandler{
		tenantUC: params.TenantUC,
		logger:   params.Logger,
	}
}

// MintTokenRequest represents the request body for minting a widget token
type MintTokenRequest struct {
	CollectionID string `json:"collection_id"`
}

// MintToken handles POST /api/auth/token. The site comes from the setup
// token; the collection may be given explicitly or defaults to the bound one.
func (h *TenantHandler) MintToken(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req MintTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}

	token, err := h.tenantUC.MintWidgetToken(c.Request().Context(), claims.SiteID, req.CollectionID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "")
}

// SaveMapboxKeyRequest represents the request body for saving a map key
type SaveMapboxKeyRequest struct {
	SiteID    string `json:"site_id"`
	MapboxKey string `json:"mapbox_key" validate:"required"`
}

// SaveMapboxKey handles POST /api/sites/mapbox. A site id in the body is
// accepted for compatibility but must match the authenticated site.
func (h *TenantHandler) SaveMapboxKey(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req SaveMapboxKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid map key input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.SiteID != "" && req.SiteID != claims.SiteID {
		return domainerrors.ErrNotSiteOwner
	}

	if err := h.tenantUC.SetMapboxKey(c.Request().Context(), claims.SiteID, req.MapboxKey); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Map key saved")
}

// SavePreferencesRequest represents the request body for binding a collection
type SavePreferencesRequest struct {
	SiteID       string `json:"site_id"`
	CollectionID string `json:"collection_id" validate:"required"`
}

// SavePreferences handles POST /api/sites/preferences.
func (h *TenantHandler) SavePreferences(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.SiteID != "" && req.SiteID != claims.SiteID {
		return domainerrors.ErrNotSiteOwner
	}

	if err := h.tenantUC.SetCollection(c.Request().Context(), claims.SiteID, req.CollectionID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Preferences saved")
}

// SetupSiteRequest represents the request body for the per-site setup route
type SetupSiteRequest struct {
	MapboxKey string `json:"mapbox_key" validate:"required"`
}

// SetupSite handles POST /api/setup/:site_id. The path site must be the one
// the setup token was minted for.
func (h *TenantHandler) SetupSite(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if c.Param("site_id") != claims.SiteID {
		return domainerrors.ErrNotSiteOwner
	}

	var req SetupSiteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.tenantUC.SetMapboxKey(c.Request().Context(), claims.SiteID, req.MapboxKey); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Map key saved")
}

// ListCollections handles GET /api/collections for the setup UI.
func (h *TenantHandler) ListCollections(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	collections, err := h.tenantUC.ListCollections(c.Request().Context(), claims.SiteID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, collections, "")
}

// MapConfig handles GET /api/map-config. It reports only whether tiles will
// work for the site; the key itself never leaves the server.
func (h *TenantHandler) MapConfig(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	cfg, err := h.tenantUC.MapConfig(c.Request().Context(), claims.SiteID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cfg, "")
}
