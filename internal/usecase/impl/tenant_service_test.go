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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tenantServiceFixtures struct {
	service    usecase.TenantUsecase
	tenantRepo *mockRepo.MockTenantRepository
	cache      *mockRepo.MockCache
	cms        *mockService.MockCMSClient
	oauth      *mockService.MockOAuthService
	tokens     *mockService.MockTokenService
}

func createTestTenantService(t *testing.T) tenantServiceFixtures {
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	cache := mockRepo.NewMockCache(t)
	cms := mockService.NewMockCMSClient(t)
	oauth := mockService.NewMockOAuthService(t)
	tokens := mockService.NewMockTokenService(t)
	service := NewTenantService(tenantRepo, cache, cms, oauth, tokens, testCacheConfig(), testLogger())

	return tenantServiceFixtures{
		service:    service,
		tenantRepo: tenantRepo,
		cache:      cache,
		cms:        cms,
		oauth:      oauth,
		tokens:     tokens,
	}
}

func TestTenantService_CompleteOAuth_Success(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().Exchange(ctx, "auth-code").Return("wf-token-1", nil)
	fx.oauth.EXPECT().Introspect(ctx, "wf-token-1").Return("site-1", nil)
	fx.tenantRepo.EXPECT().UpsertOnAuth(ctx, "site-1", "wf-token-1").Return(nil)
	fx.tokens.EXPECT().MintSetupToken("site-1").Return("setup-jwt", nil)

	result, err := fx.service.CompleteOAuth(ctx, "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "site-1", result.SiteID)
	assert.Equal(t, "setup-jwt", result.SetupToken)
}

func TestTenantService_CompleteOAuth_ExchangeFails(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().Exchange(ctx, "bad-code").Return("", errors.New("invalid_grant"))
	// No UpsertOnAuth expectation: nothing may be written on failure.

	_, err := fx.service.CompleteOAuth(ctx, "bad-code")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
}

func TestTenantService_CompleteOAuth_IntrospectFails(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().Exchange(ctx, "auth-code").Return("wf-token-1", nil)
	fx.oauth.EXPECT().Introspect(ctx, "wf-token-1").Return("", errors.New("introspect failed"))

	_, err := fx.service.CompleteOAuth(ctx, "auth-code")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
}

func TestTenantService_CompleteOAuth_UpsertFails(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().Exchange(ctx, "auth-code").Return("wf-token-1", nil)
	fx.oauth.EXPECT().Introspect(ctx, "wf-token-1").Return("site-1", nil)
	fx.tenantRepo.EXPECT().UpsertOnAuth(ctx, "site-1", "wf-token-1").Return(errors.New("db down"))

	_, err := fx.service.CompleteOAuth(ctx, "auth-code")

	assert.ErrorIs(t, err, domainerrors.ErrTenantWriteFailed)
}

func TestTenantService_MintWidgetToken_Success(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.tokens.EXPECT().MintWidgetToken("site-1", "coll-9").Return("widget-jwt", nil)

	token, err := fx.service.MintWidgetToken(ctx, "site-1", "coll-9")

	require.NoError(t, err)
	assert.Equal(t, "widget-jwt", token)
}

func TestTenantService_MintWidgetToken_FallsBackToBoundCollection(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.tokens.EXPECT().MintWidgetToken("site-1", "coll-1").Return("widget-jwt", nil)

	token, err := fx.service.MintWidgetToken(ctx, "site-1", "")

	require.NoError(t, err)
	assert.Equal(t, "widget-jwt", token)
}

func TestTenantService_MintWidgetToken_NoCollectionBound(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	tenant := testTenant()
	tenant.CollectionID = ""
	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(tenant, nil)

	_, err := fx.service.MintWidgetToken(ctx, "site-1", "")

	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotBound)
}

func TestTenantService_SetMapboxKey_UnknownSite(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().SetMapboxKey(ctx, "ghost-site", "pk.new").Return(repository.ErrTenantNotFound)

	err := fx.service.SetMapboxKey(ctx, "ghost-site", "pk.new")

	assert.ErrorIs(t, err, domainerrors.ErrSiteNotConfigured)
}

func TestTenantService_SetCollection_Success(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().SetCollectionID(ctx, "site-1", "coll-2").Return(nil)

	err := fx.service.SetCollection(ctx, "site-1", "coll-2")

	require.NoError(t, err)
}

func TestTenantService_ListCollections_CacheMiss(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	expected := []*entity.Collection{{ID: "coll-1", DisplayName: "Stores", Slug: "stores"}}

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)
	fx.cache.EXPECT().Get(ctx, "collections:site-1").Return(nil, repository.ErrCacheMiss)
	fx.cms.EXPECT().ListCollections(ctx, "wf-token-1", "site-1").Return(expected, nil)
	fx.cache.EXPECT().Put(ctx, "collections:site-1", mock.Anything, time.Hour).Return(nil)

	collections, err := fx.service.ListCollections(ctx, "site-1")

	require.NoError(t, err)
	assert.Equal(t, expected, collections)
}

func TestTenantService_MapConfig_NeverExposesKey(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(testTenant(), nil)

	cfg, err := fx.service.MapConfig(ctx, "site-1")

	require.NoError(t, err)
	assert.True(t, cfg.HasMapKey)
}

func TestTenantService_MapConfig_NoKey(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()

	tenant := testTenant()
	tenant.MapboxKey = ""
	fx.tenantRepo.EXPECT().FindBySiteID(ctx, "site-1").Return(tenant, nil)

	cfg, err := fx.service.MapConfig(ctx, "site-1")

	require.NoError(t, err)
	assert.False(t, cfg.HasMapKey)
}
