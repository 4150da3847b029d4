// Package acadterm holds the names shared with the academic term manager:
// the site properties that carry a site's term and the events posted when
// an academic session is added or updated.
package acadterm

import (
	"strings"

	"github.com/sakaigo/site-group-manager/internal/event"
	"github.com/sakaigo/site-group-manager/internal/sitegroup"
)

// Site property names defined by the host platform.
const (
	PropNameTermEID   = "term_eid"
	PropNameTermTitle = "term"
)

// Events posted to the event service.
const (
	// EventAcademicSessionUpdate is posted when an academic session has been updated.
	EventAcademicSessionUpdate = "acadtermmanage.as.upd"

	// EventAcademicSessionAdd is posted when an academic session has been added.
	// The misspelled namespace is what existing consumers subscribe to.
	EventAcademicSessionAdd = "acadtermnanage.as.add"

	// EventResourcePrefix is prepended to an academic session EID to build
	// the event resource reference.
	EventResourcePrefix = "/academicsession/"
)

// Reference returns the event resource reference of an academic session.
func Reference(eid string) string {
	return EventResourcePrefix + eid
}

// Term is the academic term a site belongs to.
type Term struct {
	EID   string
	Title string
}

// FromProperties reads the term of a site. It reports false when the site
// carries neither term property.
func FromProperties(props sitegroup.Properties) (Term, bool) {
	eid, hasEID := props.Get(PropNameTermEID)
	title, hasTitle := props.Get(PropNameTermTitle)

	if !hasEID && !hasTitle {
		return Term{}, false
	}

	t := Term{EID: strings.TrimSpace(eid), Title: strings.TrimSpace(title)}
	if t.Title == "" {
		t.Title = t.EID
	}

	return t, t.EID != "" || t.Title != ""
}

// NewSessionEvent builds the event for an added or updated academic session.
func NewSessionEvent(name, eid string) event.Event {
	return event.New(name, Reference(eid), true)
}
