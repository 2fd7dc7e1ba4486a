package middleware

import (
	"strings"

	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/errors"

	"github.com/labstack/echo/v4"
)

// keyClaims is the echo.Context key holding the verified token claims.
const keyClaims = "token_claims"

// AuthMiddleware validates the signed widget/setup credentials and exposes
// their claims to handlers. Tenant scope only ever comes from these claims.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// RequireWidget admits only requests carrying a valid widget token.
func (m *AuthMiddleware) RequireWidget(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(service.TokenTypeWidget, next)
}

// RequireSetup admits only requests carrying a valid setup token.
func (m *AuthMiddleware) RequireSetup(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(service.TokenTypeSetup, next)
}

func (m *AuthMiddleware) require(tokenType service.TokenType, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrUnauthorized
		}

		if claims.Type != tokenType {
			return domainerrors.ErrUnauthorized
		}

		SetClaims(c, claims)

		return next(c)
	}
}

// extractToken reads the credential from the Authorization header, falling
// back to the token query parameter. The fallback exists because tile
// requests issued from an img tag cannot carry headers.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return token
		}

		return ""
	}

	return c.QueryParam("token")
}

// SetClaims stores verified claims on the request context for handlers.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(keyClaims, claims)
}

// GetClaims returns the verified claims set by RequireWidget/RequireSetup.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok
}
