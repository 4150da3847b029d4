package models

import (
	"strings"
	"time"
)

// User represents a person known to the host platform.
type User struct {
	// ID is the internal user id referenced by memberships.
	ID string `gorm:"primaryKey;size:99"`
	// EID is the enterprise id, e.g. the login name.
	EID string `gorm:"column:eid;size:255;uniqueIndex"`
	// FirstName is the user's given name.
	FirstName string `gorm:"size:100"`
	// LastName is the user's family name.
	LastName string `gorm:"size:100"`
	// Email is the user's email address.
	Email string `gorm:"size:255"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// TableName overrides GORM's default table name.
func (User) TableName() string {
	return "users"
}

// DisplayName is "First Last", falling back to the EID and then the ID.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))

	switch {
	case name != "":
		return name
	case u.EID != "":
		return u.EID
	default:
		return u.ID
	}
}
