package sitegroup

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by collaborators when a site, group or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrGroupLocked matches every *LockedError through errors.Is.
	ErrGroupLocked = errors.New("group is locked")
)

// LockedError is returned when a group's realm lock forbids the requested change.
type LockedError struct {
	GroupID string
	Mode    LockMode
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("group %s is locked (%s) and cannot be deleted", e.GroupID, e.Mode)
}

// Is reports whether target is ErrGroupLocked.
func (e *LockedError) Is(target error) bool {
	return target == ErrGroupLocked
}
