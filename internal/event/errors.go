package event

import "errors"

var (
	// ErrNoServers is returned if the NATS poster is enabled without servers.
	ErrNoServers = errors.New("event nats servers can not be empty")

	// ErrEmptyName is returned when posting an event without a name.
	ErrEmptyName = errors.New("event name can not be empty")
)
