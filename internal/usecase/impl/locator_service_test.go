package impl

import (
	"context"
	"testing"

	"locator/internal/domain/entity"
	mockUsecase "locator/internal/mocks/usecase"
	"locator/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locatorViewFixtures struct {
	view      usecase.LocatorView
	locations *mockUsecase.MockLocationUsecase
	geocoder  *mockUsecase.MockGeocodeUsecase
}

func createTestLocatorView(t *testing.T, unit usecase.DistanceUnit) locatorViewFixtures {
	locations := mockUsecase.NewMockLocationUsecase(t)
	geocoder := mockUsecase.NewMockGeocodeUsecase(t)
	view := NewLocatorView(locations, geocoder, testLogger(), "site-1", "coll-1", unit)

	return locatorViewFixtures{
		view:      view,
		locations: locations,
		geocoder:  geocoder,
	}
}

func coord(lat, lng float64) (*float64, *float64) {
	return &lat, &lng
}

// storeFixtures returns NYC, LA and one record without coordinates.
func storeFixtures() []*entity.Location {
	nycLat, nycLng := coord(40.7128, -74.006)
	laLat, laLng := coord(34.0522, -118.2437)

	return []*entity.Location{
		{ID: "la", Name: "Los Angeles Store", Latitude: laLat, Longitude: laLng},
		{ID: "nyc", Name: "New York Store", Latitude: nycLat, Longitude: nycLng},
		{ID: "mail", Name: "Mail-order Desk", Address: ""},
	}
}

func geocodePoint(lat, lng float64) *entity.GeocodeResult {
	return &entity.GeocodeResult{
		Features: []entity.GeocodeFeature{{Center: orb.Point{lng, lat}}},
	}
}

func TestLocatorView_Load(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	assert.Equal(t, usecase.LocatorIdle, fx.view.State())

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)

	require.NoError(t, fx.view.Load(ctx))

	assert.Equal(t, usecase.LocatorReady, fx.view.State())
	assert.Len(t, fx.view.AllLocations(), 3)
	// Initial display order is the CMS order, no distances.
	assert.Equal(t, "la", fx.view.DisplayedLocations()[0].ID)
	assert.Nil(t, fx.view.SelectedLocation())
	assert.Empty(t, fx.view.Notice())
}

func TestLocatorView_Load_GeocodesMissingCoordinates(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	stores := storeFixtures()
	stores[2].Address = "500 Commerce Way"

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(stores, nil)
	fx.geocoder.EXPECT().Geocode(ctx, "site-1", "500 Commerce Way").Return(geocodePoint(41.0, -75.0), nil)

	require.NoError(t, fx.view.Load(ctx))

	filled := fx.view.AllLocations()[2]
	require.True(t, filled.HasCoordinates())
	assert.InDelta(t, 41.0, *filled.Latitude, 1e-9)
}

func TestLocatorView_Load_GeocodeFailureKeepsRecord(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	stores := storeFixtures()
	stores[2].Address = "500 Commerce Way"

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(stores, nil)
	fx.geocoder.EXPECT().Geocode(ctx, "site-1", "500 Commerce Way").Return(nil, errors.New("mapbox down"))

	require.NoError(t, fx.view.Load(ctx))

	assert.Len(t, fx.view.AllLocations(), 3)
	assert.False(t, fx.view.AllLocations()[2].HasCoordinates())
}

func TestLocatorView_SearchNear_SortsByHaversine(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	// Searching from NYC must put the NYC store first and LA second at
	// roughly the known great-circle distance.
	fx.geocoder.EXPECT().Geocode(ctx, "site-1", "New York").Return(geocodePoint(40.7128, -74.006), nil)

	require.NoError(t, fx.view.SearchNear(ctx, "New York"))

	displayed := fx.view.DisplayedLocations()
	require.Len(t, displayed, 3)
	assert.Equal(t, "nyc", displayed[0].ID)
	assert.Equal(t, "la", displayed[1].ID)
	assert.InDelta(t, 3936, displayed[1].DistanceKm, 10)
	// Coordinate-less records sort last.
	assert.Equal(t, "mail", displayed[2].ID)
}

func TestLocatorView_SearchNear_NotFoundKeepsList(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	before := fx.view.DisplayedLocations()

	fx.geocoder.EXPECT().Geocode(ctx, "site-1", "nowhere at all").Return(&entity.GeocodeResult{}, nil)

	require.NoError(t, fx.view.SearchNear(ctx, "nowhere at all"))

	assert.NotEmpty(t, fx.view.Notice())
	assert.Equal(t, before, fx.view.DisplayedLocations())
}

func TestLocatorView_UseCurrentLocation(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	fx.view.UseCurrentLocation(&entity.Coordinate{Latitude: 34.0522, Longitude: -118.2437}, nil)

	assert.Equal(t, "la", fx.view.DisplayedLocations()[0].ID)
}

func TestLocatorView_UseCurrentLocation_DeniedSetsNotice(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	before := fx.view.DisplayedLocations()

	fx.view.UseCurrentLocation(nil, errors.New("user denied geolocation"))

	assert.NotEmpty(t, fx.view.Notice())
	assert.Equal(t, before, fx.view.DisplayedLocations())
}

func TestLocatorView_Select(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	panTo, ok := fx.view.Select("nyc")

	require.True(t, ok)
	assert.InDelta(t, 40.7128, panTo.Latitude, 1e-9)
	assert.Equal(t, "nyc", fx.view.SelectedLocation().ID)

	// Selecting one store does not change the displayed list.
	assert.Len(t, fx.view.DisplayedLocations(), 3)
}

func TestLocatorView_Select_NoCoordinates(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	panTo, ok := fx.view.Select("mail")

	assert.False(t, ok)
	assert.Nil(t, panTo)
	// Still selectable in the list.
	assert.Equal(t, "mail", fx.view.SelectedLocation().ID)
}

func TestLocatorView_Markers_ExcludeCoordinateless(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitKilometers)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	markers := fx.view.Markers()

	require.Len(t, markers, 2)
	for _, m := range markers {
		assert.True(t, m.HasCoordinates())
	}
}

func TestLocatorView_FormatDistance(t *testing.T) {
	fx := createTestLocatorView(t, usecase.UnitMiles)
	ctx := context.Background()

	fx.locations.EXPECT().GetLocations(ctx, "site-1", "coll-1").Return(storeFixtures(), nil)
	require.NoError(t, fx.view.Load(ctx))

	// Before any search nothing is rendered.
	assert.Empty(t, fx.view.FormatDistance(fx.view.DisplayedLocations()[0]))

	fx.geocoder.EXPECT().Geocode(ctx, "site-1", "New York").Return(geocodePoint(40.7128, -74.006), nil)
	require.NoError(t, fx.view.SearchNear(ctx, "New York"))

	displayed := fx.view.DisplayedLocations()
	assert.Equal(t, "0.0 mi", fx.view.FormatDistance(displayed[0]))
	// ~3936 km converts to ~2446 mi; a missed conversion would print ~3936.
	assert.Regexp(t, `^24\d\d\.\d mi$`, fx.view.FormatDistance(displayed[1]))
	// Coordinate-less records render no distance.
	assert.Empty(t, fx.view.FormatDistance(displayed[2]))
}
