package groupmanager

import "github.com/sakaigo/site-group-manager/internal/sitegroup"

// removeInput is the removeGroups form. The batch size is checked against the config.
type removeInput struct {
	SiteID   string   `validate:"max=99"`
	GroupIDs []string `validate:"dive,required,max=99"`
}

// Row is one group line of the index page.
type Row struct {
	Group             *sitegroup.Group
	Members           string
	JoinableSet       *string
	JoinableSetMax    *string
	Locked            bool
	LockedForDeletion bool
}

// rows flattens the view into template rows, in view order.
func rows(v sitegroup.View) []Row {
	out := make([]Row, 0, len(v.Groups))

	for _, g := range v.Groups {
		out = append(out, Row{
			Group:             g,
			Members:           v.MemberSummaries[g.ID],
			JoinableSet:       v.JoinableSets[g.ID],
			JoinableSetMax:    v.JoinableSetCapacities[g.ID],
			Locked:            v.IsLocked(g.ID),
			LockedForDeletion: v.IsLockedForDeletion(g.ID),
		})
	}

	return out
}
