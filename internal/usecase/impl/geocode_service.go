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

type geocodeService struct {
	tenantRepo repository.TenantRepository
	cache      repository.Cache
	mapClient  service.MapClient
	config     *config.Config
	logger     *slog.Logger
}

// NewGeocodeService creates a new geocode service instance
func NewGeocodeService(
	tenantRepo repository.TenantRepository,
	cache repository.Cache,
	mapClient service.MapClient,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeocodeUsecase {
	return &geocodeService{
		tenantRepo: tenantRepo,
		cache:      cache,
		mapClient:  mapClient,
		config:     cfg,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *geocodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Geocode resolves an address through the tenant's map key, cache-aside per
// address. An empty result set is a valid, cacheable answer; the caller
// decides how to surface it.
func (s *geocodeService) Geocode(ctx context.Context, siteID, address string) (*entity.GeocodeResult, error) {
	if address == "" {
		return nil, domainerrors.ErrAddressRequired
	}

	tenant, err := s.tenantRepo.FindBySiteID(ctx, siteID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrSiteNotConfigured
		}

		return nil, errors.Wrap(err, "failed to find tenant by site id")
	}
	if !tenant.HasMapboxKey() {
		return nil, domainerrors.ErrMapKeyNotConfigured
	}

	cacheKey := "geocode:" + address
	if raw, cacheErr := s.cache.Get(ctx, cacheKey); cacheErr == nil {
		var result entity.GeocodeResult
		if err := json.Unmarshal(raw, &result); err == nil {
			return &result, nil
		}
		s.log(ctx).WarnContext(ctx, "Discarding undecodable cache entry", slog.String("key", cacheKey))
	}

	result, err := s.mapClient.Geocode(ctx, tenant.MapboxKey, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to geocode address")
	}

	if raw, err := json.Marshal(result); err == nil {
		_ = s.cache.Put(ctx, cacheKey, raw, s.config.Cache.GeocodeTTL)
	}

	return result, nil
}
