package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// LocationUsecase serves the location list for a widget-authenticated tenant.
// The site and collection identifiers come from verified token claims, never
// from request parameters.
type LocationUsecase interface {
	GetLocations(ctx context.Context, siteID, collectionID string) ([]*entity.Location, error)
}
