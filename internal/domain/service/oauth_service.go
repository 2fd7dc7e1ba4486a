package service

import "context"

// OAuthService drives the CMS provider's authorization-code flow for
// onboarding a tenant.
type OAuthService interface {
	// AuthorizeURL builds the provider consent URL. origin is the embedding
	// page that started the flow; it is round-tripped through the state
	// parameter so the callback can send the user back.
	AuthorizeURL(origin string) string

	// Exchange trades the authorization code for a CMS access token.
	Exchange(ctx context.Context, code string) (accessToken string, err error)

	// Introspect resolves which site the access token is authorized for.
	Introspect(ctx context.Context, accessToken string) (siteID string, err error)
}
