package sitegroup

import "context"

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// SiteLoader loads a site snapshot with its groups.
type SiteLoader interface {
	// GetSite returns ErrNotFound if the site does not exist.
	GetSite(ctx context.Context, siteID string) (*Site, error)
}

// UserLookup resolves group members to users.
type UserLookup interface {
	// GetUser returns ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, userID string) (*User, error)
}

// GroupLookup resolves group ids.
type GroupLookup interface {
	// FindGroupByID returns ErrNotFound if the group does not exist.
	FindGroupByID(ctx context.Context, groupID string) (*Group, error)
}

// SiteMutator changes a site snapshot.
type SiteMutator interface {
	// DeleteGroup removes the group from the site. It returns a *LockedError
	// when the group's lock forbids deletion and ErrNotFound when the group
	// is not part of the site.
	DeleteGroup(ctx context.Context, site *Site, group *Group) error
}

// SitePersister writes a mutated site snapshot back.
type SitePersister interface {
	SaveSite(ctx context.Context, site *Site) error
}
