// Package impl contains the use case implementations wiring the domain
// interfaces into the tenant-scoped proxy flows.
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

type locationService struct {
	tenantRepo repository.TenantRepository
	cache      repository.Cache
	cms        service.CMSClient
	config     *config.Config
	logger     *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	tenantRepo repository.TenantRepository,
	cache repository.Cache,
	cms service.CMSClient,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		tenantRepo: tenantRepo,
		cache:      cache,
		cms:        cms,
		config:     cfg,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetLocations serves the widget's location list, cache-aside per collection.
// The collection id comes from verified claims; an empty one falls back to
// the collection the tenant bound during setup.
func (s *locationService) GetLocations(ctx context.Context, siteID, collectionID string) ([]*entity.Location, error) {
	tenant, err := s.resolveTenant(ctx, siteID)
	if err != nil {
		return nil, err
	}

	if collectionID == "" {
		collectionID = tenant.CollectionID
	}
	if collectionID == "" {
		return nil, domainerrors.ErrCollectionNotBound
	}

	cacheKey := "locations:" + collectionID
	if raw, cacheErr := s.cache.Get(ctx, cacheKey); cacheErr == nil {
		var locations []*entity.Location
		if err := json.Unmarshal(raw, &locations); err == nil {
			return locations, nil
		}
		s.log(ctx).WarnContext(ctx, "Discarding undecodable cache entry", slog.String("key", cacheKey))
	}

	locations, err := s.cms.ListCollectionItems(ctx, tenant.WebflowAccessToken, collectionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection items")
	}

	if raw, err := json.Marshal(locations); err == nil {
		// Put failures are already logged by the cache; the response
		// does not depend on them.
		_ = s.cache.Put(ctx, cacheKey, raw, s.config.Cache.LocationsTTL)
	}

	return locations, nil
}

func (s *locationService) resolveTenant(ctx context.Context, siteID string) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.FindBySiteID(ctx, siteID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrSiteNotConfigured
		}

		return nil, errors.Wrap(err, "failed to find tenant by site id")
	}

	return tenant, nil
}
