package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/errors"
	"locator/internal/usecase"
)

const (
	kmPerMile = 1.60934

	noticeAddressNotFound  = "Address not found. Try a more specific search."
	noticeGeolocationError = "Could not determine your location."
)

// locatorView is the widget's view model. One instance per rendered widget;
// callers drive it from a single goroutine.
type locatorView struct {
	locations usecase.LocationUsecase
	geocoder  usecase.GeocodeUsecase
	logger    *slog.Logger

	siteID       string
	collectionID string
	unit         usecase.DistanceUnit

	state     usecase.LocatorState
	all       []*entity.Location
	displayed []*entity.Location
	selected  *entity.Location
	notice    string
	searched  bool
}

// NewLocatorView creates a view model bound to one site and collection.
func NewLocatorView(
	locations usecase.LocationUsecase,
	geocoder usecase.GeocodeUsecase,
	logger *slog.Logger,
	siteID, collectionID string,
	unit usecase.DistanceUnit,
) usecase.LocatorView {
	if unit == "" {
		unit = usecase.UnitKilometers
	}

	return &locatorView{
		locations:    locations,
		geocoder:     geocoder,
		logger:       logger,
		siteID:       siteID,
		collectionID: collectionID,
		unit:         unit,
		state:        usecase.LocatorIdle,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the view's logger.
func (v *locatorView) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Load fetches the location list once and geocodes records that arrived
// without coordinates. Geocoding failures leave the record in the list
// without a marker rather than failing the whole load.
func (v *locatorView) Load(ctx context.Context) error {
	v.state = usecase.LocatorLoading

	all, err := v.locations.GetLocations(ctx, v.siteID, v.collectionID)
	if err != nil {
		v.state = usecase.LocatorIdle

		return errors.Wrap(err, "failed to load locations")
	}

	for _, loc := range all {
		if loc.HasCoordinates() || loc.Address == "" {
			continue
		}
		v.fillCoordinates(ctx, loc)
	}

	v.all = all
	v.displayed = append([]*entity.Location(nil), all...)
	v.selected = nil
	v.notice = ""
	v.searched = false
	v.state = usecase.LocatorReady

	return nil
}

func (v *locatorView) fillCoordinates(ctx context.Context, loc *entity.Location) {
	result, err := v.geocoder.Geocode(ctx, v.siteID, loc.Address)
	if err != nil || len(result.Features) == 0 {
		v.log(ctx).WarnContext(ctx, "Could not geocode location address",
			slog.String("location_id", loc.ID),
		)

		return
	}

	coord := result.Features[0].Coordinate()
	loc.Latitude = &coord.Latitude
	loc.Longitude = &coord.Longitude
}

// SearchNear geocodes the address and re-sorts the display list by distance
// from the best match. An address with no result sets a notice and leaves
// the current list as it was.
func (v *locatorView) SearchNear(ctx context.Context, address string) error {
	result, err := v.geocoder.Geocode(ctx, v.siteID, address)
	if err != nil {
		return errors.Wrap(err, "failed to geocode search address")
	}

	if len(result.Features) == 0 {
		v.notice = noticeAddressNotFound

		return nil
	}

	v.sortByDistanceFrom(result.Features[0].Coordinate())

	return nil
}

// UseCurrentLocation sorts from the browser-supplied position. A geolocation
// failure only sets a notice.
func (v *locatorView) UseCurrentLocation(coord *entity.Coordinate, geoErr error) {
	if geoErr != nil || coord == nil {
		v.notice = noticeGeolocationError

		return
	}

	v.sortByDistanceFrom(*coord)
}

func (v *locatorView) sortByDistanceFrom(origin entity.Coordinate) {
	displayed := append([]*entity.Location(nil), v.all...)
	for _, loc := range displayed {
		if loc.HasCoordinates() {
			loc.DistanceKm = haversineKm(origin.Latitude, origin.Longitude, *loc.Latitude, *loc.Longitude)
		} else {
			// Sorts last, rendered without a distance.
			loc.DistanceKm = math.Inf(1)
		}
	}

	sort.SliceStable(displayed, func(i, j int) bool {
		return displayed[i].DistanceKm < displayed[j].DistanceKm
	})

	v.displayed = displayed
	v.notice = ""
	v.searched = true
}

// Select marks a location and returns its pan-to coordinate, if it has one.
func (v *locatorView) Select(id string) (*entity.Coordinate, bool) {
	for _, loc := range v.all {
		if loc.ID != id {
			continue
		}

		v.selected = loc
		if !loc.HasCoordinates() {
			return nil, false
		}

		return &entity.Coordinate{Latitude: *loc.Latitude, Longitude: *loc.Longitude}, true
	}

	return nil, false
}

func (v *locatorView) State() usecase.LocatorState { return v.state }

func (v *locatorView) AllLocations() []*entity.Location { return v.all }

func (v *locatorView) DisplayedLocations() []*entity.Location { return v.displayed }

func (v *locatorView) SelectedLocation() *entity.Location { return v.selected }

func (v *locatorView) Notice() string { return v.notice }

// Markers returns only the displayed locations that can be pinned.
func (v *locatorView) Markers() []*entity.Location {
	markers := make([]*entity.Location, 0, len(v.displayed))
	for _, loc := range v.displayed {
		if loc.HasCoordinates() {
			markers = append(markers, loc)
		}
	}

	return markers
}

// FormatDistance renders a location's computed distance in the configured
// unit. Empty before any search and for locations without coordinates.
func (v *locatorView) FormatDistance(loc *entity.Location) string {
	if !v.searched || loc == nil || math.IsInf(loc.DistanceKm, 1) {
		return ""
	}

	switch v.unit {
	case usecase.UnitMiles:
		return fmt.Sprintf("%.1f mi", loc.DistanceKm/kmPerMile)
	default:
		return fmt.Sprintf("%.1f km", loc.DistanceKm)
	}
}

// haversineKm calculates the great circle distance between two points in kilometers
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
