package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// LocatorState is the lifecycle of the locator view model.
type LocatorState string

const (
	LocatorIdle    LocatorState = "idle"
	LocatorLoading LocatorState = "loading"
	LocatorReady   LocatorState = "ready"
)

// DistanceUnit selects how distances are rendered for display.
type DistanceUnit string

const (
	UnitKilometers DistanceUnit = "km"
	UnitMiles      DistanceUnit = "mi"
)

// LocatorView is the embeddable widget's view model. One instance per
// rendered widget; it is not safe for concurrent use and holds no shared
// state between instances.
type LocatorView interface {
	// Load fetches the tenant's locations once and moves the view to ready.
	// Records without stored coordinates are geocoded lazily from their
	// address; records that still cannot be resolved stay in the list
	// without a marker.
	Load(ctx context.Context) error

	// SearchNear geocodes an address and re-sorts the displayed list by
	// distance from the best match. An unresolvable address sets a
	// user-visible notice and leaves the current list untouched.
	SearchNear(ctx context.Context, address string) error

	// UseCurrentLocation sorts from a caller-supplied position. A non-nil
	// geoErr (the browser denied or failed geolocation) sets a notice and
	// changes nothing else.
	UseCurrentLocation(coord *entity.Coordinate, geoErr error)

	// Select marks a location as selected and returns its pan-to
	// coordinate. Locations without coordinates are selectable but report
	// no coordinate.
	Select(id string) (*entity.Coordinate, bool)

	State() LocatorState
	AllLocations() []*entity.Location
	DisplayedLocations() []*entity.Location
	SelectedLocation() *entity.Location

	// Markers returns only the displayed locations that can be placed on
	// the map.
	Markers() []*entity.Location

	// Notice returns the current user-visible message, if any.
	Notice() string

	// FormatDistance renders a location's distance in the configured unit,
	// empty when no search has run or the location has no coordinates.
	FormatDistance(loc *entity.Location) string
}
