package entity

import "github.com/paulmach/orb"

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeFeature is one candidate result from the map provider's forward
// geocoder. Center uses orb's [lng, lat] point, which matches the provider's
// JSON wire order directly.
type GeocodeFeature struct {
	PlaceName string    `json:"place_name,omitempty"`
	Center    orb.Point `json:"center"`
}

// Coordinate converts the provider's lng/lat order into a Coordinate.
func (f GeocodeFeature) Coordinate() Coordinate {
	return Coordinate{Latitude: f.Center.Lat(), Longitude: f.Center.Lon()}
}

// GeocodeResult is the full geocoder response for one address.
type GeocodeResult struct {
	Features []GeocodeFeature `json:"features"`
}
