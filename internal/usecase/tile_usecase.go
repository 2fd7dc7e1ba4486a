package usecase

import "context"

// TileInput carries one tile request as parsed from the URL path. Style is
// the raw style reference; normalization happens inside the service.
type TileInput struct {
	Style  string
	Z      uint32
	X      uint32
	Y      uint32
	Retina bool
}

// TileUsecase proxies map tiles for a tenant using its stored provider key.
type TileUsecase interface {
	GetTile(ctx context.Context, siteID string, input *TileInput) ([]byte, error)
}
