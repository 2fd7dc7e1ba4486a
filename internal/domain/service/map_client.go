package service

import (
	"context"

	"locator/internal/domain/entity"
)

// UpstreamError reports a non-2xx answer from a third-party API. StatusCode
// is propagated to the caller where meaningful instead of masked as success.
type UpstreamError struct {
	API        string // "mapbox" or "webflow"
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return e.API + " upstream returned unexpected status"
}

// MapClient is a thin caller to the map provider's tile and geocoding APIs.
type MapClient interface {
	// FetchTile proxies one raster tile, keyed by the tenant's own map key.
	FetchTile(ctx context.Context, key string, req entity.TileRequest) ([]byte, error)

	// Geocode resolves a free-text address to candidate coordinates.
	Geocode(ctx context.Context, key, address string) (*entity.GeocodeResult, error)
}
