package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	mockRepo "locator/internal/mocks/repository"
	mockService "locator/internal/mocks/service"
	"locator/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type geocodeServiceFixtures struct {
	service    usecase.GeocodeUsecase
	tenantRepo *mockRepo.MockTenantRepository
	cache      *mockRepo.MockCache
	mapClient  *mockService.MockMapClient
}

func createTestGeocodeService(t *testing.T) geocodeServiceFixtures {
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	cache := mockRepo.NewMockCache(t)
	mapClient := mockService.NewMockMapClient(t)
	service := NewGeocodeService(tenantRepo, cache, mapClient, testCacheConfig(), testLogger())

	return geocodeServiceFixtures{
		service:    service,
		tenantRepo: tenantRepo,
		cache:      cache,
		mapClient:  mapClient,
	}
}

func nycGeocodeResult() *entity.GeocodeResult {
	return &entity.GeocodeResult{
		Features: []entity.GeocodeFeature{
			{PlaceName: "New York, NY", Center: orb.Point{-74.006, 40.7128}},
		},
	}
}

func TestGeocodeService_Geocode_CacheMiss(t *testing.T) {
	fx := createTestGeocodeService(t)
	ctx := context.Background()
	expected := nycGeocodeResult()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "geocode:New York").Return(nil, repository.ErrCacheMiss)
	fx.mapClient.EXPECT().Geocode(ctx, "pk.tenant-1", "New York").Return(expected, nil)
	fx.cache.EXPECT().Put(ctx, "geocode:New York", mock.Anything, 24*time.Hour).Return(nil)

	result, err := fx.service.Geocode(ctx, "site-1", "New York")

	require.NoError(t, err)
	require.Len(t, result.Features, 1)
	assert.InDelta(t, 40.7128, result.Features[0].Coordinate().Latitude, 1e-9)
}

func TestGeocodeService_Geocode_WarmCacheSkipsUpstream(t *testing.T) {
	fx := createTestGeocodeService(t)
	ctx := context.Background()

	cached, err := json.Marshal(nycGeocodeResult())
	require.NoError(t, err)

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "geocode:New York").Return(cached, nil)
	// No Geocode expectation: a warm cache must not reach upstream.

	result, err := fx.service.Geocode(ctx, "site-1", "New York")

	require.NoError(t, err)
	require.Len(t, result.Features, 1)
	assert.Equal(t, "New York, NY", result.Features[0].PlaceName)
}

func TestGeocodeService_Geocode_EmptyAddress(t *testing.T) {
	fx := createTestGeocodeService(t)

	_, err := fx.service.Geocode(context.Background(), "site-1", "")

	assert.ErrorIs(t, err, domainerrors.ErrAddressRequired)
}

func TestGeocodeService_Geocode_NoMapKey(t *testing.T) {
	fx := createTestGeocodeService(t)
	ctx := context.Background()

	tenant := testTenant()
	tenant.MapboxKey = ""
	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(tenant, nil)

	_, err := fx.service.Geocode(ctx, "site-1", "New York")

	assert.ErrorIs(t, err, domainerrors.ErrMapKeyNotConfigured)
}

func TestGeocodeService_Geocode_EmptyResultIsCached(t *testing.T) {
	fx := createTestGeocodeService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "geocode:nowhere at all").Return(nil, repository.ErrCacheMiss)
	fx.mapClient.EXPECT().Geocode(ctx, "pk.tenant-1", "nowhere at all").Return(&entity.GeocodeResult{}, nil)
	fx.cache.EXPECT().Put(ctx, "geocode:nowhere at all", mock.Anything, 24*time.Hour).Return(nil)

	result, err := fx.service.Geocode(ctx, "site-1", "nowhere at all")

	require.NoError(t, err)
	assert.Empty(t, result.Features)
}
