package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/sakaigo/site-group-manager/internal/sitegroup"
)

func TestObserveRemoval(t *testing.T) {
	deleted := testutil.ToFloat64(GroupRemovals.WithLabelValues(OutcomeDeleted))
	locked := testutil.ToFloat64(GroupRemovals.WithLabelValues(OutcomeLocked))
	notFound := testutil.ToFloat64(GroupRemovals.WithLabelValues(OutcomeNotFound))
	saves := testutil.ToFloat64(SiteSaves)

	ObserveRemoval(sitegroup.RemoveResult{
		AnyDeleted: true,
		Deleted:    []string{"g1", "g2"},
		Locked:     []string{"g3"},
	})

	assert.InDelta(t, deleted+2, testutil.ToFloat64(GroupRemovals.WithLabelValues(OutcomeDeleted)), 0)
	assert.InDelta(t, locked+1, testutil.ToFloat64(GroupRemovals.WithLabelValues(OutcomeLocked)), 0)
	assert.InDelta(t, notFound, testutil.ToFloat64(GroupRemovals.WithLabelValues(OutcomeNotFound)), 0)
	assert.InDelta(t, saves+1, testutil.ToFloat64(SiteSaves), 0)

	ObserveRemoval(sitegroup.RemoveResult{NotFound: []string{"x"}})

	assert.InDelta(t, notFound+1, testutil.ToFloat64(GroupRemovals.WithLabelValues(OutcomeNotFound)), 0)
	assert.InDelta(t, saves+1, testutil.ToFloat64(SiteSaves), 0)
}
