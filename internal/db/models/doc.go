// Package models contains the gorm models of sites, groups and users.
package models

// All returns every model for AutoMigrate in dependency order.
func All() []any {
	return []any{
		&User{},
		&Site{},
		&SiteProperty{},
		&Group{},
		&GroupProperty{},
		&GroupMember{},
	}
}
