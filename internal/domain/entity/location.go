package entity

// Location is one store entry from a tenant's CMS collection.
// Latitude/Longitude are pointers because CMS records may ship without
// coordinates; those records stay listable but are geocoded lazily and
// excluded from map markers until coordinates exist.
type Location struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Phone     string   `json:"phone,omitempty"`

	// DistanceKm is derived per search and never stored. Zero means
	// "not computed" only when no search has run; use HasDistance on the
	// view side to disambiguate.
	DistanceKm float64 `json:"distance_km,omitempty"`
}

// HasCoordinates reports whether the location can be placed on a map.
func (l *Location) HasCoordinates() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}
