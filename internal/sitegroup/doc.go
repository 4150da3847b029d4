// Package sitegroup holds the group model of a site and the two operations
// the group manager performs on it.
//
// BuildView turns a site snapshot into the lists and maps the index page
// renders: the groups created through site setup sorted by title, the
// groups locked against modification or deletion, and per group the member
// names and joinable set settings.
//
// Remover deletes a batch of groups from a site. Groups whose realm lock
// forbids deletion are reported and skipped, unknown ids are skipped, and
// the site is saved once when at least one group was deleted.
//
// Persistence, user directory and site resolution are collaborators
// described by the interfaces in collaborators.go.
package sitegroup
