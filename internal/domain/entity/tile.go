package entity

import (
	"fmt"

	"github.com/paulmach/orb/maptile"
)

// StyleRef is a normalized Mapbox style reference. Styles arrive from the
// widget as a bare id, a "user/style" pair, or a full provider URL; the map
// client normalizes all of them into this pair before building upstream URLs.
type StyleRef struct {
	User    string
	StyleID string
}

func (s StyleRef) String() string {
	return s.User + "/" + s.StyleID
}

// TileRequest identifies one raster tile of a styled map.
type TileRequest struct {
	Style  StyleRef
	Tile   maptile.Tile
	Retina bool // "@2x" suffix on the requested filename.
}

// CacheKey builds the tenant-scoped cache key for this tile. Retina and
// non-retina tiles cache under distinct keys.
func (r TileRequest) CacheKey(siteID string) string {
	key := fmt.Sprintf("tile:%s:%s:%d:%d:%d", siteID, r.Style, r.Tile.Z, r.Tile.X, r.Tile.Y)
	if r.Retina {
		key += ":2x"
	}

	return key
}

// Collection is one CMS collection of a site, listed during setup so the
// site owner can bind the widget to it.
type Collection struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Slug        string `json:"slug"`
}
