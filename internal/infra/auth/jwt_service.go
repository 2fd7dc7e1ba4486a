// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"locator/config"
	"locator/internal/domain/service"
	"locator/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Signing secret shared by both token audiences.
	widgetTTL time.Duration // Lifetime of widget tokens (long, embedded-widget use case).
	setupTTL  time.Duration // Lifetime of setup tokens (short, one onboarding session).
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Signing,
		widgetTTL: cfg.Token.WidgetTTL,
		setupTTL:  cfg.Token.SetupTTL,
	}, nil
}

// MintWidgetToken signs the long-lived credential the published widget embeds.
func (s *jwtService) MintWidgetToken(siteID, collectionID string) (string, error) {
	return s.mint(siteID, collectionID, service.TokenTypeWidget, s.widgetTTL)
}

// MintSetupToken signs the short-lived credential the OAuth callback hands back.
func (s *jwtService) MintSetupToken(siteID string) (string, error) {
	return s.mint(siteID, "", service.TokenTypeSetup, s.setupTTL)
}

// Verify checks signature and expiry and extracts the tenant scope.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	siteID, _ := claims["site_id"].(string)
	if siteID == "" {
		return nil, service.ErrTokenInvalid
	}
	tokenType, _ := claims["type"].(string)
	collectionID, _ := claims["collection_id"].(string)

	switch service.TokenType(tokenType) {
	case service.TokenTypeWidget, service.TokenTypeSetup:
	default:
		return nil, service.ErrTokenInvalid
	}

	return &service.Claims{
		SiteID:       siteID,
		CollectionID: collectionID,
		Type:         service.TokenType(tokenType),
	}, nil
}

// mint is a private helper to create a JWT with specific claims.
func (s *jwtService) mint(siteID, collectionID string, tokenType service.TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"site_id": siteID,
		"type":    string(tokenType),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	if collectionID != "" {
		claims["collection_id"] = collectionID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
