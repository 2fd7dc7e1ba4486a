package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	mockRepo "locator/internal/mocks/repository"
	mockService "locator/internal/mocks/service"
	"locator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service    usecase.LocationUsecase
	tenantRepo *mockRepo.MockTenantRepository
	cache      *mockRepo.MockCache
	cms        *mockService.MockCMSClient
}

func testCacheConfig() *config.Config {
	return &config.Config{
		Cache: &config.CacheConfig{
			LocationsTTL:   time.Hour,
			CollectionsTTL: time.Hour,
			GeocodeTTL:     24 * time.Hour,
			TileTTL:        7 * 24 * time.Hour,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	cache := mockRepo.NewMockCache(t)
	cms := mockService.NewMockCMSClient(t)
	service := NewLocationService(tenantRepo, cache, cms, testCacheConfig(), testLogger())

	return locationServiceFixtures{
		service:    service,
		tenantRepo: tenantRepo,
		cache:      cache,
		cms:        cms,
	}
}

func testTenant() *entity.Tenant {
	return &entity.Tenant{
		SiteID:             "site-1",
		WebflowAccessToken: "wf-token-1",
		MapboxKey:          "pk.tenant-1",
		CollectionID:       "coll-1",
	}
}

func testLocations() []*entity.Location {
	lat := 40.7128
	lng := -74.006

	return []*entity.Location{
		{ID: "loc-1", Name: "Downtown", Address: "1 Main St", Latitude: &lat, Longitude: &lng},
	}
}

func TestLocationService_GetLocations_CacheMiss(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	expected := testLocations()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "locations:coll-1").Return(nil, repository.ErrCacheMiss)
	fx.cms.EXPECT().ListCollectionItems(ctx, "wf-token-1", "coll-1").Return(expected, nil)
	fx.cache.EXPECT().Put(ctx, "locations:coll-1", mock.Anything, time.Hour).Return(nil)

	locations, err := fx.service.GetLocations(ctx, "site-1", "coll-1")

	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestLocationService_GetLocations_WarmCacheSkipsUpstream(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	expected := testLocations()

	cached, err := json.Marshal(expected)
	require.NoError(t, err)

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "locations:coll-1").Return(cached, nil)
	// No CMS expectation: a warm cache must not reach upstream.

	locations, err := fx.service.GetLocations(ctx, "site-1", "coll-1")

	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "loc-1", locations[0].ID)
}

func TestLocationService_GetLocations_CacheFailureIsTransparent(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	expected := testLocations()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "locations:coll-1").Return(nil, errors.New("redis connection refused"))
	fx.cms.EXPECT().ListCollectionItems(ctx, "wf-token-1", "coll-1").Return(expected, nil)
	fx.cache.EXPECT().Put(ctx, "locations:coll-1", mock.Anything, time.Hour).Return(errors.New("redis connection refused"))

	locations, err := fx.service.GetLocations(ctx, "site-1", "coll-1")

	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestLocationService_GetLocations_ClaimsScopeTenant(t *testing.T) {
	// The collection in the request is taken from verified claims; a tenant
	// whose data lives under another collection id never leaks in.
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "locations:coll-own").Return(nil, repository.ErrCacheMiss)
	fx.cms.EXPECT().ListCollectionItems(ctx, "wf-token-1", "coll-own").Return([]*entity.Location{}, nil)
	fx.cache.EXPECT().Put(ctx, "locations:coll-own", mock.Anything, time.Hour).Return(nil)

	locations, err := fx.service.GetLocations(ctx, "site-1", "coll-own")

	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestLocationService_GetLocations_FallsBackToBoundCollection(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "locations:coll-1").Return(nil, repository.ErrCacheMiss)
	fx.cms.EXPECT().ListCollectionItems(ctx, "wf-token-1", "coll-1").Return(testLocations(), nil)
	fx.cache.EXPECT().Put(ctx, "locations:coll-1", mock.Anything, time.Hour).Return(nil)

	_, err := fx.service.GetLocations(ctx, "site-1", "")

	require.NoError(t, err)
}

func TestLocationService_GetLocations_SiteNotConfigured(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "ghost-site").Return(nil, repository.ErrTenantNotFound)

	_, err := fx.service.GetLocations(ctx, "ghost-site", "coll-1")

	assert.ErrorIs(t, err, domainerrors.ErrSiteNotConfigured)
}

func TestLocationService_GetLocations_NoCollectionBound(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	tenant := testTenant()
	tenant.CollectionID = ""
	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(tenant, nil)

	_, err := fx.service.GetLocations(ctx, "site-1", "")

	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotBound)
}

func TestLocationService_GetLocations_UsesRequestScopedLogger(t *testing.T) {
	// Service logs reach the request-scoped logger carried in the context,
	// not the injected base logger, so they pick up the request id.
	fx := createTestLocationService(t)

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	// Undecodable cache entry triggers the warn path and a fresh fetch.
	fx.cache.EXPECT().Get(ctx, "locations:coll-1").Return([]byte("{corrupt"), nil)
	fx.cms.EXPECT().ListCollectionItems(ctx, "wf-token-1", "coll-1").Return(testLocations(), nil)
	fx.cache.EXPECT().Put(ctx, "locations:coll-1", mock.Anything, time.Hour).Return(nil)

	_, err := fx.service.GetLocations(ctx, "site-1", "coll-1")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Discarding undecodable cache entry")
	assert.Contains(t, buf.String(), "request_id=req-123")
}

func TestLocationService_GetLocations_UpstreamFailure(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "locations:coll-1").Return(nil, repository.ErrCacheMiss)
	fx.cms.EXPECT().ListCollectionItems(ctx, "wf-token-1", "coll-1").Return(nil, errors.New("webflow down"))

	_, err := fx.service.GetLocations(ctx, "site-1", "coll-1")

	require.Error(t, err)
}
