package postgres

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

// FindBySiteID retrieves a tenant by its site id.
func (repo *tenantRepository) FindBySiteID(ctx context.Context, siteID string) (*entity.Tenant, error) {
	var tenantM model.TenantModel
	if err := repo.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by site id")
	}

	return toTenantDomain(&tenantM), nil
}

// UpsertOnAuth inserts the tenant on first OAuth completion or refreshes the
// access token on re-auth. Last write wins on the token column.
func (repo *tenantRepository) UpsertOnAuth(ctx context.Context, siteID, accessToken string) error {
	tenantM := model.TenantModel{
		SiteID:             siteID,
		WebflowAccessToken: accessToken,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"webflow_access_token", "updated_at"}),
		}).
		Create(&tenantM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert tenant")
	}

	return nil
}

// SetMapboxKey stores the tenant's map provider key.
func (repo *tenantRepository) SetMapboxKey(ctx context.Context, siteID, key string) error {
	return repo.updateColumn(ctx, siteID, "mapbox_key", key)
}

// SetCollectionID stores the collection the widget is bound to.
func (repo *tenantRepository) SetCollectionID(ctx context.Context, siteID, collectionID string) error {
	return repo.updateColumn(ctx, siteID, "collection_id", collectionID)
}

func (repo *tenantRepository) updateColumn(ctx context.Context, siteID, column, value string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("site_id = ?", siteID).
		Update(column, value)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update tenant %s", column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

func toTenantDomain(m *model.TenantModel) *entity.Tenant {
	return &entity.Tenant{
		SiteID:             m.SiteID,
		WebflowAccessToken: m.WebflowAccessToken,
		MapboxKey:          m.MapboxKey,
		CollectionID:       m.CollectionID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
