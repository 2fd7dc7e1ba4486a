// Package upstream contains thin clients for the third-party APIs the proxy
// fronts: the Webflow content API and the Mapbox tile/geocoding API.
package upstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"locator/config"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/errors"
)

// upstreamTimeout bounds every third-party call. The provider defaults are
// unbounded, which is unacceptable inside a request handler.
const upstreamTimeout = 10 * time.Second

// cmsClient calls the Webflow v2 content API.
type cmsClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCMSClient is the constructor for the Webflow content API client.
func NewCMSClient(cfg *config.Config, logger *slog.Logger) service.CMSClient {
	return &cmsClient{
		baseURL:    cfg.Webflow.APIBaseURL,
		httpClient: &http.Client{Timeout: upstreamTimeout},
		logger:     logger,
	}
}

// itemsResponse mirrors the provider's collection items payload. Coordinates
// are optional fields that may be absent until a record is geocoded.
type itemsResponse struct {
	Items []struct {
		ID        string `json:"id"`
		FieldData struct {
			Name      string   `json:"name"`
			Address   string   `json:"address"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
			Phone     string   `json:"phone"`
		} `json:"fieldData"`
	} `json:"items"`
}

// ListCollectionItems fetches every item of a collection using the tenant's
// stored access token.
func (c *cmsClient) ListCollectionItems(ctx context.Context, accessToken, collectionID string) ([]*entity.Location, error) {
	var parsed itemsResponse
	if err := c.getJSON(ctx, accessToken, "/v2/collections/"+collectionID+"/items", &parsed); err != nil {
		return nil, err
	}

	locations := make([]*entity.Location, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		locations = append(locations, &entity.Location{
			ID:        item.ID,
			Name:      item.FieldData.Name,
			Address:   item.FieldData.Address,
			Latitude:  item.FieldData.Latitude,
			Longitude: item.FieldData.Longitude,
			Phone:     item.FieldData.Phone,
		})
	}

	return locations, nil
}

// collectionsResponse mirrors the provider's site collections payload.
type collectionsResponse struct {
	Collections []struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Slug        string `json:"slug"`
	} `json:"collections"`
}

// ListCollections fetches the site's collections for the setup flow.
func (c *cmsClient) ListCollections(ctx context.Context, accessToken, siteID string) ([]*entity.Collection, error) {
	var parsed collectionsResponse
	if err := c.getJSON(ctx, accessToken, "/v2/sites/"+siteID+"/collections", &parsed); err != nil {
		return nil, err
	}

	collections := make([]*entity.Collection, 0, len(parsed.Collections))
	for _, coll := range parsed.Collections {
		collections = append(collections, &entity.Collection{
			ID:          coll.ID,
			DisplayName: coll.DisplayName,
			Slug:        coll.Slug,
		})
	}

	return collections, nil
}

func (c *cmsClient) getJSON(ctx context.Context, accessToken, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build CMS request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "CMS request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "CMS API returned unexpected status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return &service.UpstreamError{API: "webflow", StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode CMS response")
	}

	return nil
}
