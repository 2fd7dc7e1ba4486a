package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// GeocodeUsecase resolves free-text addresses through the tenant's map key,
// with results cached per address.
type GeocodeUsecase interface {
	Geocode(ctx context.Context, siteID, address string) (*entity.GeocodeResult, error)
}
