package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"locator/internal/delivery/http/response"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	TenantUC usecase.TenantUsecase
	Logger   *slog.Logger
}

// OAuthHandler drives the onboarding authorization-code flow.
type OAuthHandler struct {
	tenantUC usecase.TenantUsecase
	logger   *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		tenantUC: params.TenantUC,
		logger:   params.Logger,
	}
}

// Authorize handles GET /api/auth/webflow. The caller's origin rides in the
// OAuth state parameter so the callback can send the user back.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	origin := c.QueryParam("origin")

	return c.Redirect(http.StatusFound, h.tenantUC.AuthorizeURL(origin))
}

// Callback handles GET /api/auth/webflow/callback. On success the user is
// redirected back to the origin carried in state, with the setup token
// appended; without a state the result is returned as JSON.
func (h *OAuthHandler) Callback(c echo.Context) error {
	if errParam := c.QueryParam("error"); errParam != "" {
		h.logger.Warn("OAuth consent denied", slog.String("error", errParam))

		return domainerrors.ErrOAuthExchangeFailed
	}

	code := c.QueryParam("code")
	if code == "" {
		return domainerrors.ErrOAuthExchangeFailed
	}

	result, err := h.tenantUC.CompleteOAuth(c.Request().Context(), code)
	if err != nil {
		return err
	}

	origin := c.QueryParam("state")
	if origin == "" {
		return response.Success(c, http.StatusOK, result, "Authorization complete")
	}

	redirect, err := buildCallbackRedirect(origin, result)
	if err != nil {
		return response.Success(c, http.StatusOK, result, "Authorization complete")
	}

	return c.Redirect(http.StatusFound, redirect)
}

func buildCallbackRedirect(origin string, result *usecase.OAuthResult) (string, error) {
	target, err := url.Parse(origin)
	if err != nil || target.Scheme == "" {
		return "", domainerrors.ErrOAuthExchangeFailed
	}

	query := target.Query()
	query.Set("site_id", result.SiteID)
	query.Set("setup_token", result.SetupToken)
	target.RawQuery = query.Encode()

	return target.String(), nil
}
