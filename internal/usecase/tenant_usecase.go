package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// OAuthResult is what the OAuth callback hands back to the onboarding UI:
// the authorized site and a short-lived setup token scoped to it.
type OAuthResult struct {
	SiteID     string `json:"site_id"`
	SetupToken string `json:"setup_token"`
}

// MapConfigOutput tells the widget whether tiles will work for this site.
// The key itself is never exposed.
type MapConfigOutput struct {
	HasMapKey bool `json:"has_map_key"`
}

// TenantUsecase covers onboarding and per-site configuration. Every mutating
// operation takes the site id from verified setup-token claims; a mismatch
// with the target site is reported as not-owned.
type TenantUsecase interface {
	// AuthorizeURL builds the provider consent URL, round-tripping the
	// caller's origin through the OAuth state parameter.
	AuthorizeURL(origin string) string

	// CompleteOAuth exchanges the authorization code, introspects the
	// resulting access token for the authorized site, and upserts the
	// tenant record. No tenant row is written if any step fails.
	CompleteOAuth(ctx context.Context, code string) (*OAuthResult, error)

	// MintWidgetToken issues the long-lived embed credential for a site and
	// its bound collection.
	MintWidgetToken(ctx context.Context, siteID, collectionID string) (string, error)

	SetMapboxKey(ctx context.Context, siteID, key string) error
	SetCollection(ctx context.Context, siteID, collectionID string) error

	// ListCollections returns the site's CMS collections for the setup UI,
	// cache-aside per site.
	ListCollections(ctx context.Context, siteID string) ([]*entity.Collection, error)

	// MapConfig reports whether the site has a map key configured.
	MapConfig(ctx context.Context, siteID string) (*MapConfigOutput, error)
}
