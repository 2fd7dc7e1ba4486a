package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"locator/config"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/errors"
)

// mapClient calls the Mapbox styles and geocoding APIs.
type mapClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewMapClient is the constructor for the Mapbox API client.
func NewMapClient(cfg *config.Config, logger *slog.Logger) service.MapClient {
	return &mapClient{
		baseURL:    cfg.Mapbox.APIBaseURL,
		httpClient: &http.Client{Timeout: upstreamTimeout},
		logger:     logger,
	}
}

// FetchTile proxies one 512px raster tile. The retina suffix is reattached
// here after having been stripped from the request path for cache keying.
func (c *mapClient) FetchTile(ctx context.Context, key string, req entity.TileRequest) ([]byte, error) {
	suffix := ""
	if req.Retina {
		suffix = "@2x"
	}
	tileURL := fmt.Sprintf("%s/styles/v1/%s/%s/tiles/512/%d/%d/%d%s?access_token=%s",
		c.baseURL, req.Style.User, req.Style.StyleID,
		req.Tile.Z, req.Tile.X, req.Tile.Y, suffix,
		url.QueryEscape(key),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, tileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tile request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "tile request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "Tile API returned unexpected status",
			slog.String("style", req.Style.String()),
			slog.Int("status", resp.StatusCode),
		)

		return nil, &service.UpstreamError{API: "mapbox", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tile body")
	}

	return body, nil
}

// Geocode resolves a free-text address to candidate coordinates.
func (c *mapClient) Geocode(ctx context.Context, key, address string) (*entity.GeocodeResult, error) {
	geocodeURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s",
		c.baseURL, url.PathEscape(address), url.QueryEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geocodeURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocode request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "Geocoding API returned unexpected status",
			slog.Int("status", resp.StatusCode),
		)

		return nil, &service.UpstreamError{API: "mapbox", StatusCode: resp.StatusCode}
	}

	var result entity.GeocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocode response")
	}

	return &result, nil
}
