package service

import "locator/internal/errors"

// Token verification failure modes. Both map to 401, but handlers log them
// distinctly and ErrTokenExpired lets the embedding UI prompt a re-auth.
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// TokenType distinguishes the two token audiences this service mints.
type TokenType string

const (
	// TokenTypeWidget is the long-lived credential embedded in the published
	// widget. It binds a caller to a site and a collection.
	TokenTypeWidget TokenType = "widget"

	// TokenTypeSetup is the short-lived credential handed back after OAuth.
	// It authorizes tenant-mutating setup calls for exactly one site.
	TokenTypeSetup TokenType = "setup"
)

// Claims is the verified payload of a locator token. A verified Claims value
// is the only legitimate source of tenant scoping for a request.
type Claims struct {
	SiteID       string
	CollectionID string // Empty for setup tokens.
	Type         TokenType
}

// TokenService defines the interface for minting and verifying the signed,
// scoped credentials that every proxied request presents.
type TokenService interface {
	// MintWidgetToken signs a long-lived token binding siteID and collectionID.
	MintWidgetToken(siteID, collectionID string) (string, error)

	// MintSetupToken signs a short-lived token authorizing setup calls for siteID.
	MintSetupToken(siteID string) (string, error)

	// Verify checks signature and expiry. Returns ErrTokenExpired for a
	// well-signed but stale token and ErrTokenInvalid for everything else.
	Verify(token string) (*Claims, error)
}
