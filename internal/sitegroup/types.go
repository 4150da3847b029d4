package sitegroup

import (
	"strings"
)

// Group property names as persisted by the host platform.
const (
	// PropWSetupCreated marks groups created through site setup ("true"/"false").
	PropWSetupCreated = "group_prop_wsetup_created"
	// PropJoinableSet names the joinable set a group belongs to.
	PropJoinableSet = "joinable_set"
	// PropJoinableSetMax is the string encoded member capacity of a joinable group.
	PropJoinableSetMax = "joinable_set_max"
	// PropJoinableSetPreview allows members to preview the set before joining.
	PropJoinableSetPreview = "joinable_set_preview"
	// PropJoinableUnjoinable allows members to leave the group again.
	PropJoinableUnjoinable = "joinable_unjoinable"
)

// LockMode is the realm lock of a group.
type LockMode string

const (
	// LockNone means the group can be modified and deleted.
	LockNone LockMode = "NONE"
	// LockModify forbids modifying the group.
	LockModify LockMode = "MODIFY"
	// LockDelete forbids deleting the group.
	LockDelete LockMode = "DELETE"
	// LockAll forbids both.
	LockAll LockMode = "ALL"
)

// ParseLockMode maps a persisted lock value to a LockMode. Empty and unknown
// values are treated as LockNone.
func ParseLockMode(s string) LockMode {
	switch LockMode(strings.ToUpper(strings.TrimSpace(s))) {
	case LockModify:
		return LockModify
	case LockDelete:
		return LockDelete
	case LockAll:
		return LockAll
	default:
		return LockNone
	}
}

// ForbidsModify reports whether the lock is ALL or MODIFY.
func (m LockMode) ForbidsModify() bool {
	return m == LockAll || m == LockModify
}

// ForbidsDelete reports whether the lock is ALL or DELETE.
func (m LockMode) ForbidsDelete() bool {
	return m == LockAll || m == LockDelete
}

// Properties is the string property bag of a site or group.
type Properties map[string]string

// Get returns the property value and whether it is present.
func (p Properties) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Flag reports whether the property is present and equals "true", ignoring case.
func (p Properties) Flag(name string) bool {
	v, ok := p[name]
	return ok && strings.EqualFold(v, "true")
}

// ptr returns a pointer to a copy of the property value or nil if absent.
func (p Properties) ptr(name string) *string {
	v, ok := p[name]
	if !ok {
		return nil
	}

	return &v
}

// Member references a user of a group.
type Member struct {
	UserID string
	Role   string
}

// User is a resolved member.
type User struct {
	ID          string
	EID         string
	DisplayName string
}

// Group is a named subset of the members of a site.
type Group struct {
	ID          string
	SiteID      string
	Title       string
	Description string
	Properties  Properties
	Members     []Member
	Lock        LockMode
}

// Site is a snapshot of a site and its groups.
type Site struct {
	ID         string
	Title      string
	Properties Properties
	Groups     []*Group

	deleted []string
}

// Group returns the group with the given id.
func (s *Site) Group(id string) (*Group, bool) {
	for _, g := range s.Groups {
		if g.ID == id {
			return g, true
		}
	}

	return nil, false
}

// DeleteGroup removes g from the site. The removal is kept pending until the
// site is saved. A group whose lock forbids deletion is left in place and a
// *LockedError is returned.
func (s *Site) DeleteGroup(g *Group) error {
	if g == nil {
		return ErrNotFound
	}

	idx := -1

	for i, sg := range s.Groups {
		if sg.ID == g.ID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return ErrNotFound
	}

	for _, lock := range []LockMode{g.Lock, s.Groups[idx].Lock} {
		if lock.ForbidsDelete() {
			return &LockedError{GroupID: g.ID, Mode: lock}
		}
	}

	s.Groups = append(s.Groups[:idx:idx], s.Groups[idx+1:]...)
	s.deleted = append(s.deleted, g.ID)

	return nil
}

// DeletedGroupIDs returns the ids of groups deleted since the last save, in
// deletion order.
func (s *Site) DeletedGroupIDs() []string {
	out := make([]string, len(s.deleted))
	copy(out, s.deleted)

	return out
}

// MarkSaved clears the pending deletions after they were persisted.
func (s *Site) MarkSaved() {
	s.deleted = nil
}
