package models

import "time"

// Site represents a course or project site owning groups.
type Site struct {
	// ID is the site id as assigned by the host platform.
	ID string `gorm:"primaryKey;size:99"`
	// Title is the display title of the site.
	Title string `gorm:"size:255;not null"`
	// Type is the site type, e.g. course or project.
	Type string `gorm:"size:99"`
	// Properties holds the site property bag.
	Properties []SiteProperty `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE"`
	// Groups holds the site groups.
	Groups []Group `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// TableName overrides GORM's default table name.
func (Site) TableName() string {
	return "sites"
}

// SiteProperty is a single name/value pair of a site.
type SiteProperty struct {
	SiteID string `gorm:"primaryKey;size:99"`
	Name   string `gorm:"primaryKey;size:99"`
	Value  string `gorm:"type:text"`
}

// TableName overrides GORM's default table name.
func (SiteProperty) TableName() string {
	return "site_properties"
}
