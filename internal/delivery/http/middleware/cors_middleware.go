package middleware

import (
	"net/http"
	"strings"

	"locator/config"

	"github.com/labstack/echo/v4"
)

// defaultAllowOrigins covers the CMS designer/editor surfaces and published
// site domains where the widget runs, plus local development.
var defaultAllowOrigins = []string{
	"https://webflow.com",
	"https://*.webflow.com",
	"https://*.design.webflow.com",
	"https://*.webflow.io",
	"http://localhost:3000",
	"http://localhost:8080",
}

// CORSMiddleware enforces the embed origin allow-list. Patterns support a
// leading "*." wildcard that matches any subdomain depth.
type CORSMiddleware struct {
	allowOrigins []string
}

// NewCORSMiddleware is the constructor for CORSMiddleware. Configured origins
// extend the defaults rather than replacing them.
func NewCORSMiddleware(cfg *config.Config) *CORSMiddleware {
	allowOrigins := append([]string(nil), defaultAllowOrigins...)
	if cfg.CORS != nil {
		allowOrigins = append(allowOrigins, cfg.CORS.AllowOrigins...)
	}

	return &CORSMiddleware{allowOrigins: allowOrigins}
}

// Process sets the CORS headers for allowed origins and short-circuits
// preflight requests with an empty 204.
func (m *CORSMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		origin := c.Request().Header.Get(echo.HeaderOrigin)
		if origin != "" && m.originAllowed(origin) {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, origin)
			header.Set(echo.HeaderAccessControlAllowCredentials, "true")
			header.Set(echo.HeaderVary, echo.HeaderOrigin)
			header.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
			header.Set(echo.HeaderAccessControlAllowHeaders, "Authorization, Content-Type")
			header.Set(echo.HeaderAccessControlMaxAge, "86400")
		}

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusNoContent)
		}

		return next(c)
	}
}

func (m *CORSMiddleware) originAllowed(origin string) bool {
	for _, pattern := range m.allowOrigins {
		if matchOrigin(pattern, origin) {
			return true
		}
	}

	return false
}

func matchOrigin(pattern, origin string) bool {
	if pattern == origin {
		return true
	}

	scheme, host, ok := strings.Cut(pattern, "://")
	if !ok || !strings.HasPrefix(host, "*.") {
		return false
	}

	originScheme, originHost, ok := strings.Cut(origin, "://")
	if !ok || originScheme != scheme {
		return false
	}

	suffix := host[1:] // ".webflow.io"

	return strings.HasSuffix(originHost, suffix) && len(originHost) > len(suffix)
}
