// Package entity contains the core business objects of the project.
package entity

import "time"

// Tenant is one onboarded Webflow site. It is created on a successful OAuth
// callback and updated as the site owner completes map and collection setup.
type Tenant struct {
	SiteID             string    `json:"site_id"`    // Opaque identity issued by the CMS provider at OAuth time.
	WebflowAccessToken string    `json:"-"`          // Server-side CMS credential. Never serialized into a response.
	MapboxKey          string    `json:"-"`          // Map provider key. Absent until map setup completes.
	CollectionID       string    `json:"collection_id"` // Collection the widget is bound to, chosen during setup.
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// HasMapboxKey reports whether the tenant finished map setup.
func (t *Tenant) HasMapboxKey() bool {
	return t != nil && t.MapboxKey != ""
}
