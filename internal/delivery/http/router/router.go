// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locator/internal/delivery/http/middleware"
	"locator/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	TileHandler     *handler.TileHandler
	GeocodeHandler  *handler.GeocodeHandler
	TenantHandler   *handler.TenantHandler
	OAuthHandler    *handler.OAuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	tileHandler     *handler.TileHandler
	geocodeHandler  *handler.GeocodeHandler
	tenantHandler   *handler.TenantHandler
	oauthHandler    *handler.OAuthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		tileHandler:     params.TileHandler,
		geocodeHandler:  params.GeocodeHandler,
		tenantHandler:   params.TenantHandler,
		oauthHandler:    params.OAuthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Onboarding: the OAuth dance itself is unauthenticated.
	api.GET("/auth/webflow", r.oauthHandler.Authorize)
	api.GET("/auth/webflow/callback", r.oauthHandler.Callback)

	// Widget surface, scoped by the long-lived widget token. The tile
	// route also accepts the token query parameter for img-tag requests.
	widgetGroup := api.Group("", r.authMiddleware.RequireWidget)
	{
		widgetGroup.GET("/locations", r.locationHandler.GetLocations)
		widgetGroup.GET("/geocode", r.geocodeHandler.Geocode)
		widgetGroup.GET("/maps/tiles/:z/:x/:y", r.tileHandler.GetTile)
		widgetGroup.GET("/map-config", r.tenantHandler.MapConfig)
	}

	// Setup surface, scoped by the short-lived setup token minted at the
	// OAuth callback.
	setupGroup := api.Group("", r.authMiddleware.RequireSetup)
	{
		setupGroup.POST("/auth/token", r.tenantHandler.MintToken)
		setupGroup.GET("/collections", r.tenantHandler.ListCollections)
		setupGroup.POST("/sites/mapbox", r.tenantHandler.SaveMapboxKey)
		setupGroup.POST("/sites/preferences", r.tenantHandler.SavePreferences)
		setupGroup.POST("/setup/:site_id", r.tenantHandler.SetupSite)
	}
}
