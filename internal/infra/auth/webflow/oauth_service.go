// Package webflow implements the CMS provider's OAuth onboarding flow.
package webflow

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"locator/config"
	"locator/internal/domain/service"
	"locator/internal/errors"
)

const introspectTimeout = 10 * time.Second

// oauthService exchanges authorization codes and introspects the resulting
// token to learn which site authorized the app.
type oauthService struct {
	oauth      *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOAuthService is the constructor for the Webflow OAuth service.
func NewOAuthService(cfg *config.Config, logger *slog.Logger) (service.OAuthService, error) {
	if cfg.Webflow.ClientID == "" || cfg.Webflow.ClientSecret == "" {
		return nil, errors.New("webflow oauth client credentials must be provided")
	}

	return &oauthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.Webflow.ClientID,
			ClientSecret: cfg.Webflow.ClientSecret,
			RedirectURL:  cfg.Webflow.RedirectURL,
			Scopes:       []string{"cms:read", "sites:read"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.Webflow.AuthURL,
				TokenURL: cfg.Webflow.APIBaseURL + "/oauth/access_token",
			},
		},
		apiBaseURL: cfg.Webflow.APIBaseURL,
		httpClient: &http.Client{Timeout: introspectTimeout},
		logger:     logger,
	}, nil
}

// AuthorizeURL builds the consent URL. The embedding page's origin rides in
// the state parameter so the callback can redirect back to it.
func (s *oauthService) AuthorizeURL(origin string) string {
	return s.oauth.AuthCodeURL(origin)
}

// Exchange trades the authorization code for a CMS access token.
func (s *oauthService) Exchange(ctx context.Context, code string) (string, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange authorization code")
	}

	return token.AccessToken, nil
}

// introspectResponse mirrors the provider's token introspection payload.
type introspectResponse struct {
	Authorization struct {
		AuthorizedTo struct {
			SiteIDs []string `json:"siteIds"`
		} `json:"authorizedTo"`
	} `json:"authorization"`
}

// Introspect resolves the site the access token is authorized for.
func (s *oauthService) Introspect(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBaseURL+"/v2/token/introspect", nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build introspect request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "introspect request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Token introspection returned unexpected status", slog.Int("status", resp.StatusCode))

		return "", &service.UpstreamError{API: "webflow", StatusCode: resp.StatusCode}
	}

	var parsed introspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode introspect response")
	}

	siteIDs := parsed.Authorization.AuthorizedTo.SiteIDs
	if len(siteIDs) == 0 {
		return "", errors.New("token is not authorized for any site")
	}

	return siteIDs[0], nil
}
