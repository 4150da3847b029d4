package sitegroup

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RemoveResult reports the outcome of a removal batch.
type RemoveResult struct {
	// AnyDeleted is true if at least one group was deleted.
	AnyDeleted bool
	// Deleted, Locked and NotFound hold the requested ids per outcome, in request order.
	Deleted  []string
	Locked   []string
	NotFound []string
}

// Remover deletes groups from a site.
type Remover struct {
	Groups    GroupLookup
	Sites     SiteMutator
	Persister SitePersister
}

// NewRemover creates a Remover.
func NewRemover(groups GroupLookup, sites SiteMutator, persister SitePersister) *Remover {
	return &Remover{
		Groups:    groups,
		Sites:     sites,
		Persister: persister,
	}
}

// RemoveGroups deletes the requested groups from site in the given order.
// Unknown ids and locked groups are recorded and skipped. The site is saved
// once after the loop if anything was deleted. Other collaborator errors
// abort the batch without saving.
func (r *Remover) RemoveGroups(ctx context.Context, site *Site, groupIDs []string) (RemoveResult, error) {
	var res RemoveResult

	if site == nil || len(groupIDs) == 0 {
		return res, nil
	}

	for _, id := range groupIDs {
		log.Debug().Str("site", site.ID).Str("group", id).Msg("deleting group")

		g, err := r.Groups.FindGroupByID(ctx, id)

		switch {
		case errors.Is(err, ErrNotFound) || (err == nil && g == nil):
			log.Debug().Str("group", id).Msg("group not found, skipping")

			res.NotFound = append(res.NotFound, id)

			continue
		case err != nil:
			return res, fmt.Errorf("find group %s: %w", id, err)
		}

		err = r.Sites.DeleteGroup(ctx, site, g)

		switch {
		case err == nil:
			res.Deleted = append(res.Deleted, id)
			res.AnyDeleted = true
		case errors.Is(err, ErrGroupLocked):
			log.Error().Str("group", id).Msg("the group is locked and cannot be deleted")

			res.Locked = append(res.Locked, id)
		case errors.Is(err, ErrNotFound):
			log.Debug().Str("group", id).Str("site", site.ID).Msg("group is not part of the site, skipping")

			res.NotFound = append(res.NotFound, id)
		default:
			return res, fmt.Errorf("delete group %s: %w", id, err)
		}
	}

	if res.AnyDeleted {
		if err := r.Persister.SaveSite(ctx, site); err != nil {
			return res, fmt.Errorf("save site %s: %w", site.ID, err)
		}
	}

	return res, nil
}
