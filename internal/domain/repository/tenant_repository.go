// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

// ErrTenantNotFound is returned when no tenant record exists for a site id.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository defines the interface for tenant-related database operations.
// Every method is scoped by site id; callers must take that id from a verified
// token, never from unauthenticated input.
type TenantRepository interface {
	// FindBySiteID retrieves a tenant by its site id.
	// Returns ErrTenantNotFound if the site was never onboarded.
	FindBySiteID(ctx context.Context, siteID string) (*entity.Tenant, error)

	// UpsertOnAuth inserts the tenant on first OAuth completion or overwrites
	// its access token on re-auth. Idempotent, last write wins.
	UpsertOnAuth(ctx context.Context, siteID, accessToken string) error

	// SetMapboxKey stores the tenant's map provider key.
	// Ownership must be verified by the caller before invoking.
	SetMapboxKey(ctx context.Context, siteID, key string) error

	// SetCollectionID stores the collection the widget is bound to.
	// Ownership must be verified by the caller before invoking.
	SetCollectionID(ctx context.Context, siteID, collectionID string) error
}
