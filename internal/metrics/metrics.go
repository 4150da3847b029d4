// Package metrics exposes prometheus counters for the group manager.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sakaigo/site-group-manager/internal/sitegroup"
)

// Removal outcomes used as label values.
const (
	OutcomeDeleted  = "deleted"
	OutcomeLocked   = "locked"
	OutcomeNotFound = "not_found"
)

var (
	// GroupRemovals counts requested group removals by outcome.
	GroupRemovals = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "site_group_removals_total",
			Help: "Number of requested group removals, differentiated by outcome.",
		},
		[]string{"outcome"},
	)

	// SiteSaves counts sites saved after a removal batch.
	SiteSaves = promauto.NewCounter( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "site_group_saves_total",
			Help: "Number of sites saved after deleting groups.",
		},
	)

	// Views counts rendered group views.
	Views = promauto.NewCounter( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "site_group_views_total",
			Help: "Number of group views built.",
		},
	)
)

// ObserveRemoval records the outcome of a removal batch.
func ObserveRemoval(res sitegroup.RemoveResult) {
	GroupRemovals.WithLabelValues(OutcomeDeleted).Add(float64(len(res.Deleted)))
	GroupRemovals.WithLabelValues(OutcomeLocked).Add(float64(len(res.Locked)))
	GroupRemovals.WithLabelValues(OutcomeNotFound).Add(float64(len(res.NotFound)))

	if res.AnyDeleted {
		SiteSaves.Inc()
	}
}
