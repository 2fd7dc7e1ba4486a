package impl

import (
	"context"
	"log/slog"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/paulmach/orb/maptile"
)

// maxTileZoom follows the provider's raster tile API limit.
const maxTileZoom = 22

type tileService struct {
	tenantRepo repository.TenantRepository
	cache      repository.Cache
	mapClient  service.MapClient
	config     *config.Config
	logger     *slog.Logger
}

// NewTileService creates a new tile service instance
func NewTileService(
	tenantRepo repository.TenantRepository,
	cache repository.Cache,
	mapClient service.MapClient,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TileUsecase {
	return &tileService{
		tenantRepo: tenantRepo,
		cache:      cache,
		mapClient:  mapClient,
		config:     cfg,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *tileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetTile serves one raster tile for the site, cache-aside per tile address.
// The map key is read from the tenant record on every call so a rotated or
// removed key takes effect immediately.
func (s *tileService) GetTile(ctx context.Context, siteID string, input *usecase.TileInput) ([]byte, error) {
	style, err := entity.ParseStyleRef(input.Style)
	if err != nil {
		return nil, domainerrors.ErrBadStyleFormat
	}

	if input.Z > maxTileZoom || input.X >= 1<<input.Z || input.Y >= 1<<input.Z {
		return nil, domainerrors.ErrInvalidTileCoordinates
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

	req := entity.TileRequest{
		Style:  style,
		Tile:   maptile.New(input.X, input.Y, maptile.Zoom(input.Z)),
		Retina: input.Retina,
	}

	cacheKey := req.CacheKey(siteID)
	if body, cacheErr := s.cache.Get(ctx, cacheKey); cacheErr == nil {
		return body, nil
	}

	body, err := s.mapClient.FetchTile(ctx, tenant.MapboxKey, req)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "Tile fetch failed",
			slog.String("site_id", siteID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to fetch tile")
	}

	_ = s.cache.Put(ctx, cacheKey, body, s.config.Cache.TileTTL)

	return body, nil
}
