package impl

import (
	"context"
	"testing"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	mockRepo "locator/internal/mocks/repository"
	mockService "locator/internal/mocks/service"
	"locator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tileServiceFixtures struct {
	service    usecase.TileUsecase
	tenantRepo *mockRepo.MockTenantRepository
	cache      *mockRepo.MockCache
	mapClient  *mockService.MockMapClient
}

func createTestTileService(t *testing.T) tileServiceFixtures {
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	cache := mockRepo.NewMockCache(t)
	mapClient := mockService.NewMockMapClient(t)
	service := NewTileService(tenantRepo, cache, mapClient, testCacheConfig(), testLogger())

	return tileServiceFixtures{
		service:    service,
		tenantRepo: tenantRepo,
		cache:      cache,
		mapClient:  mapClient,
	}
}

func testTileInput() *usecase.TileInput {
	return &usecase.TileInput{Style: "mapbox/streets-v12", Z: 10, X: 301, Y: 385}
}

func TestTileService_GetTile_CacheMiss(t *testing.T) {
	fx := createTestTileService(t)
	ctx := context.Background()
	tile := []byte("png-bytes")

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "tile:site-1:mapbox/streets-v12:10:301:385").Return(nil, repository.ErrCacheMiss)
	fx.mapClient.EXPECT().FetchTile(ctx, "pk.tenant-1", mock.AnythingOfType("entity.TileRequest")).Return(tile, nil)
	fx.cache.EXPECT().Put(ctx, "tile:site-1:mapbox/streets-v12:10:301:385", tile, 7*24*time.Hour).Return(nil)

	body, err := fx.service.GetTile(ctx, "site-1", testTileInput())

	require.NoError(t, err)
	assert.Equal(t, tile, body)
}

func TestTileService_GetTile_WarmCacheSkipsUpstream(t *testing.T) {
	fx := createTestTileService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "tile:site-1:mapbox/streets-v12:10:301:385").Return([]byte("cached-png"), nil)
	// No FetchTile expectation: a warm cache must not reach upstream.

	body, err := fx.service.GetTile(ctx, "site-1", testTileInput())

	require.NoError(t, err)
	assert.Equal(t, []byte("cached-png"), body)
}

func TestTileService_GetTile_RetinaUsesDistinctKey(t *testing.T) {
	fx := createTestTileService(t)
	ctx := context.Background()

	input := testTileInput()
	input.Retina = true

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "tile:site-1:mapbox/streets-v12:10:301:385:2x").Return(nil, repository.ErrCacheMiss)
	fx.mapClient.EXPECT().FetchTile(ctx, "pk.tenant-1", mock.AnythingOfType("entity.TileRequest")).
		Run(func(ctx context.Context, key string, req entity.TileRequest) {
			assert.True(t, req.Retina)
		}).
		Return([]byte("retina-png"), nil)
	fx.cache.EXPECT().Put(ctx, "tile:site-1:mapbox/streets-v12:10:301:385:2x", mock.Anything, 7*24*time.Hour).Return(nil)

	_, err := fx.service.GetTile(ctx, "site-1", input)

	require.NoError(t, err)
}

func TestTileService_GetTile_TenantScopedKey(t *testing.T) {
	// Two sites requesting the same tile address never share a cache entry.
	fx := createTestTileService(t)
	ctx := context.Background()

	other := testTenant()
	other.SiteID = "site-2"
	other.MapboxKey = "pk.tenant-2"

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-2").Return(other, nil)
	fx.cache.EXPECT().Get(ctx, "tile:site-2:mapbox/streets-v12:10:301:385").Return(nil, repository.ErrCacheMiss)
	fx.mapClient.EXPECT().FetchTile(ctx, "pk.tenant-2", mock.AnythingOfType("entity.TileRequest")).Return([]byte("png"), nil)
	fx.cache.EXPECT().Put(ctx, "tile:site-2:mapbox/streets-v12:10:301:385", mock.Anything, 7*24*time.Hour).Return(nil)

	_, err := fx.service.GetTile(ctx, "site-2", testTileInput())

	require.NoError(t, err)
}

func TestTileService_GetTile_BadStyle(t *testing.T) {
	fx := createTestTileService(t)

	input := testTileInput()
	input.Style = "not a style//"

	_, err := fx.service.GetTile(context.Background(), "site-1", input)

	assert.ErrorIs(t, err, domainerrors.ErrBadStyleFormat)
}

func TestTileService_GetTile_InvalidCoordinates(t *testing.T) {
	fx := createTestTileService(t)

	input := testTileInput()
	input.X = 2048 // Out of range for zoom 10.

	_, err := fx.service.GetTile(context.Background(), "site-1", input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTileCoordinates)
}

func TestTileService_GetTile_NoMapKey(t *testing.T) {
	fx := createTestTileService(t)
	ctx := context.Background()

	tenant := testTenant()
	tenant.MapboxKey = ""
	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(tenant, nil)

	_, err := fx.service.GetTile(ctx, "site-1", testTileInput())

	assert.ErrorIs(t, err, domainerrors.ErrMapKeyNotConfigured)
}

func TestTileService_GetTile_SiteNotConfigured(t *testing.T) {
	fx := createTestTileService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "ghost-site").Return(nil, repository.ErrTenantNotFound)

	_, err := fx.service.GetTile(ctx, "ghost-site", testTileInput())

	assert.ErrorIs(t, err, domainerrors.ErrSiteNotConfigured)
}
