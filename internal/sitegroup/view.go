package sitegroup

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// MemberSeparator joins member display names in a member summary.
const MemberSeparator = ", "

// View is what the group manager index renders for a site.
type View struct {
	// Groups are the groups created through site setup, sorted by title.
	Groups []*Group
	// LockedGroups are the groups that cannot be modified, in site order.
	LockedGroups []*Group
	// LockedForDeletionGroups are the groups that cannot be deleted, in site order.
	LockedForDeletionGroups []*Group
	// MemberSummaries maps group id to the sorted, comma separated member names.
	MemberSummaries map[string]string
	// JoinableSets maps group id to its joinable set, nil if none.
	JoinableSets map[string]*string
	// JoinableSetCapacities maps group id to its joinable set capacity, nil if none.
	JoinableSetCapacities map[string]*string
}

// BuildView builds the index view of site. Members that users cannot resolve
// are left out of the summaries.
func BuildView(ctx context.Context, site *Site, users UserLookup) View {
	v := View{
		Groups:                  []*Group{},
		LockedGroups:            []*Group{},
		LockedForDeletionGroups: []*Group{},
		MemberSummaries:         map[string]string{},
		JoinableSets:            map[string]*string{},
		JoinableSetCapacities:   map[string]*string{},
	}

	if site == nil {
		return v
	}

	for _, g := range site.Groups {
		if g.Properties.Flag(PropWSetupCreated) {
			v.Groups = append(v.Groups, g)
		}

		if g.Lock.ForbidsModify() {
			v.LockedGroups = append(v.LockedGroups, g)
		}

		if g.Lock.ForbidsDelete() {
			v.LockedForDeletionGroups = append(v.LockedForDeletionGroups, g)
		}
	}

	slices.SortStableFunc(v.Groups, func(a, b *Group) int {
		return CompareFold(a.Title, b.Title)
	})

	for _, g := range v.Groups {
		v.MemberSummaries[g.ID] = memberSummary(ctx, g, users)
		v.JoinableSets[g.ID] = g.Properties.ptr(PropJoinableSet)
		v.JoinableSetCapacities[g.ID] = g.Properties.ptr(PropJoinableSetMax)
	}

	log.Debug().Str("site", site.ID).Int("groups", len(v.Groups)).Msg("built group view")

	return v
}

// IsLocked reports whether the group with the given id cannot be modified.
func (v View) IsLocked(groupID string) bool {
	return containsGroup(v.LockedGroups, groupID)
}

// IsLockedForDeletion reports whether the group with the given id cannot be deleted.
func (v View) IsLockedForDeletion(groupID string) bool {
	return containsGroup(v.LockedForDeletionGroups, groupID)
}

func containsGroup(groups []*Group, id string) bool {
	return slices.ContainsFunc(groups, func(g *Group) bool { return g.ID == id })
}

func memberSummary(ctx context.Context, g *Group, users UserLookup) string {
	if users == nil || len(g.Members) == 0 {
		return ""
	}

	resolved := make([]*User, 0, len(g.Members))

	for _, m := range g.Members {
		u, err := users.GetUser(ctx, m.UserID)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Warn().Err(err).Str("group", g.ID).Str("user", m.UserID).Msg("failed to resolve group member")
			}

			continue
		}

		if u != nil {
			resolved = append(resolved, u)
		}
	}

	slices.SortStableFunc(resolved, func(a, b *User) int {
		return CompareFold(a.DisplayName, b.DisplayName)
	})

	names := make([]string, len(resolved))
	for i, u := range resolved {
		names[i] = u.DisplayName
	}

	return strings.Join(names, MemberSeparator)
}

// CompareFold compares a and b case-insensitively. Group titles and member
// names are both ordered with it.
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
