package models

import "time"

// Group is a named subset of the members of a site.
type Group struct {
	// ID is the group id as assigned by the host platform.
	ID string `gorm:"primaryKey;size:99"`
	// SiteID is the owning site.
	SiteID string `gorm:"size:99;not null;index"`
	// Title is the display title of the group.
	Title string `gorm:"size:255;not null"`
	// Description is optional free text.
	Description string `gorm:"type:text"`
	// RealmLock is the persisted lock mode: NONE, MODIFY, DELETE or ALL.
	RealmLock string `gorm:"column:realm_lock;size:10;not null;default:'NONE'"`
	// Properties holds the group property bag.
	Properties []GroupProperty `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	// Members holds the group memberships.
	Members []GroupMember `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// TableName overrides GORM's default table name. "groups" is reserved in MySQL 8.
func (Group) TableName() string {
	return "site_groups"
}

// GroupProperty is a single name/value pair of a group.
type GroupProperty struct {
	GroupID string `gorm:"primaryKey;size:99"`
	Name    string `gorm:"primaryKey;size:99"`
	Value   string `gorm:"type:text"`
}

// TableName overrides GORM's default table name.
func (GroupProperty) TableName() string {
	return "group_properties"
}

// GroupMember links a user to a group with a role.
type GroupMember struct {
	GroupID string `gorm:"primaryKey;size:99"`
	UserID  string `gorm:"primaryKey;size:99;index"`
	Role    string `gorm:"size:99"`
	// Position keeps the membership order of the host platform.
	Position int
}

// TableName overrides GORM's default table name.
func (GroupMember) TableName() string {
	return "group_members"
}
