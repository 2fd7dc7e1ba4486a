// Package model holds the GORM-specific structs mirroring database tables.
package model

import "time"

// TenantModel is the GORM-specific struct for the 'tenants' table.
// The site id comes from the CMS provider, so the primary key is an opaque
// string rather than a generated UUID.
type TenantModel struct {
	SiteID             string `gorm:"type:varchar(64);primary_key"`
	WebflowAccessToken string `gorm:"type:text;not null"`
	MapboxKey          string `gorm:"type:text"`
	CollectionID       string `gorm:"type:varchar(64)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}
