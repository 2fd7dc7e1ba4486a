package service

import (
	"context"

	"locator/internal/domain/entity"
)

// CMSClient is a thin caller to the Webflow content API. It is always
// authenticated with the tenant's stored access token, never with the
// widget caller's credential.
type CMSClient interface {
	// ListCollectionItems fetches every item of a collection.
	ListCollectionItems(ctx context.Context, accessToken, collectionID string) ([]*entity.Location, error)

	// ListCollections fetches the site's collections for the setup flow.
	ListCollections(ctx context.Context, accessToken, siteID string) ([]*entity.Collection, error)
}
