// Package event posts domain events (group deletions, academic session
// changes) to the configured event sink.
package event

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Event is a single domain event.
type Event struct {
	// Name is the dotted event name, e.g. "sitegroup.del".
	Name string `json:"event"`
	// Resource is the reference of the affected resource.
	Resource string `json:"resource"`
	// SiteID is the site the event belongs to, empty for global events.
	SiteID string `json:"siteId,omitempty"`
	// Modify is true for events that changed the resource.
	Modify bool      `json:"modify"`
	Time   time.Time `json:"time"`
}

// Poster posts events.
type Poster interface {
	Post(ctx context.Context, e Event) error
	Close() error
}

// New returns an event stamped with the current time.
func New(name, resource string, modify bool) Event {
	return Event{
		Name:     name,
		Resource: resource,
		Modify:   modify,
		Time:     time.Now().UTC(),
	}
}

// LogPoster writes events to the log only. It is used when no message
// broker is configured.
type LogPoster struct{}

// Post implements Poster.
func (LogPoster) Post(_ context.Context, e Event) error {
	log.Info().
		Str("event", e.Name).
		Str("resource", e.Resource).
		Str("site", e.SiteID).
		Bool("modify", e.Modify).
		Time("time", e.Time).
		Msg("event posted")

	return nil
}

// Close implements Poster.
func (LogPoster) Close() error { return nil }

// PostAll posts every event and logs failures. Events are best effort and
// never fail the caller.
func PostAll(ctx context.Context, p Poster, events ...Event) {
	if p == nil {
		return
	}

	for _, e := range events {
		if err := p.Post(ctx, e); err != nil {
			log.Error().Err(err).Str("event", e.Name).Str("resource", e.Resource).Msg("failed to post event")
		}
	}
}

// Open returns a NATSPoster if enabled, else a LogPoster.
func Open(enabled bool, cfg NATSConfig) (Poster, error) {
	if !enabled {
		return LogPoster{}, nil
	}

	return NewNATSPoster(cfg)
}
