package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"
)

type tenantService struct {
	tenantRepo repository.TenantRepository
	cache      repository.Cache
	cms        service.CMSClient
	oauth      service.OAuthService
	tokens     service.TokenService
	config     *config.Config
	logger     *slog.Logger
}

// NewTenantService creates a new tenant service instance
func NewTenantService(
	tenantRepo repository.TenantRepository,
	cache repository.Cache,
	cms service.CMSClient,
	oauth service.OAuthService,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TenantUsecase {
	return &tenantService{
		tenantRepo: tenantRepo,
		cache:      cache,
		cms:        cms,
		oauth:      oauth,
		tokens:     tokens,
		config:     cfg,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AuthorizeURL builds the provider consent URL for the onboarding flow.
func (s *tenantService) AuthorizeURL(origin string) string {
	return s.oauth.AuthorizeURL(origin)
}

// CompleteOAuth finishes onboarding: code for token, token for site id, then
// a single tenant upsert. Any failure leaves the tenant table untouched for
// this flow, so a retry starts clean.
func (s *tenantService) CompleteOAuth(ctx context.Context, code string) (*usecase.OAuthResult, error) {
	accessToken, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "OAuth code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed
	}

	siteID, err := s.oauth.Introspect(ctx, accessToken)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "Token introspection failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed
	}

	if err := s.tenantRepo.UpsertOnAuth(ctx, siteID, accessToken); err != nil {
		s.log(ctx).ErrorContext(ctx, "Tenant upsert failed",
			slog.String("site_id", siteID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrTenantWriteFailed
	}

	setupToken, err := s.tokens.MintSetupToken(siteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint setup token")
	}

	return &usecase.OAuthResult{SiteID: siteID, SetupToken: setupToken}, nil
}

// MintWidgetToken issues the embed credential once the site owner has picked
// a collection.
func (s *tenantService) MintWidgetToken(ctx context.Context, siteID, collectionID string) (string, error) {
	tenant, err := s.findTenant(ctx, siteID)
	if err != nil {
		return "", err
	}

	if collectionID == "" {
		collectionID = tenant.CollectionID
	}
	if collectionID == "" {
		return "", domainerrors.ErrCollectionNotBound
	}

	token, err := s.tokens.MintWidgetToken(siteID, collectionID)
	if err != nil {
		return "", errors.Wrap(err, "failed to mint widget token")
	}

	return token, nil
}

func (s *tenantService) SetMapboxKey(ctx context.Context, siteID, key string) error {
	if err := s.tenantRepo.SetMapboxKey(ctx, siteID, key); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return domainerrors.ErrSiteNotConfigured
		}

		return errors.Wrap(err, "failed to store map key")
	}

	return nil
}

func (s *tenantService) SetCollection(ctx context.Context, siteID, collectionID string) error {
	if err := s.tenantRepo.SetCollectionID(ctx, siteID, collectionID); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return domainerrors.ErrSiteNotConfigured
		}

		return errors.Wrap(err, "failed to store collection binding")
	}

	return nil
}

// ListCollections serves the site's CMS collections for the setup UI,
// cache-aside per site.
func (s *tenantService) ListCollections(ctx context.Context, siteID string) ([]*entity.Collection, error) {
	tenant, err := s.findTenant(ctx, siteID)
	if err != nil {
		return nil, err
	}

	cacheKey := "collections:" + siteID
	if raw, cacheErr := s.cache.Get(ctx, cacheKey); cacheErr == nil {
		var collections []*entity.Collection
		if err := json.Unmarshal(raw, &collections); err == nil {
			return collections, nil
		}
		s.log(ctx).WarnContext(ctx, "Discarding undecodable cache entry", slog.String("key", cacheKey))
	}

	collections, err := s.cms.ListCollections(ctx, tenant.WebflowAccessToken, siteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	if raw, err := json.Marshal(collections); err == nil {
		_ = s.cache.Put(ctx, cacheKey, raw, s.config.Cache.CollectionsTTL)
	}

	return collections, nil
}

// MapConfig tells the widget whether tiles will work, without ever exposing
// the key.
func (s *tenantService) MapConfig(ctx context.Context, siteID string) (*usecase.MapConfigOutput, error) {
	tenant, err := s.findTenant(ctx, siteID)
	if err != nil {
		return nil, err
	}

	return &usecase.MapConfigOutput{HasMapKey: tenant.HasMapboxKey()}, nil
}

func (s *tenantService) findTenant(ctx context.Context, siteID string) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.FindBySiteID(ctx, siteID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrSiteNotConfigured
		}

		return nil, errors.Wrap(err, "failed to find tenant by site id")
	}

	return tenant, nil
}
