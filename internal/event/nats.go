package event

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const (
	// HeaderEventName carries Event.Name on published messages.
	HeaderEventName = "Event-Name"
	// HeaderEventResource carries Event.Resource on published messages.
	HeaderEventResource = "Event-Resource"

	defaultSubjectPrefix = "sitegroups"
	defaultTimeout       = 3 * time.Second
	defaultReconnectWait = 500 * time.Millisecond
)

// NATSConfig configures the NATS poster.
type NATSConfig struct {
	Servers       []string
	Name          string
	SubjectPrefix string
	Timeout       time.Duration
}

// NATSPoster publishes events as JSON on "<prefix>.<event name>".
type NATSPoster struct {
	nc     *nats.Conn
	prefix string
}

// NewNATSPoster connects to the configured NATS servers.
func NewNATSPoster(cfg NATSConfig) (*NATSPoster, error) {
	if len(cfg.Servers) == 0 {
		return nil, ErrNoServers
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	nc, err := nats.Connect(strings.Join(cfg.Servers, ","),
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(defaultReconnectWait),
		nats.Timeout(cfg.Timeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to nats")
	}

	return &NATSPoster{nc: nc, prefix: subjectPrefix(cfg.SubjectPrefix)}, nil
}

// Post implements Poster.
func (p *NATSPoster) Post(_ context.Context, e Event) error {
	msg, err := newMsg(p.prefix, e)
	if err != nil {
		return err
	}

	if err = p.nc.PublishMsg(msg); err != nil {
		return errors.Wrapf(err, "publish %s failed", msg.Subject)
	}

	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPoster) Close() error {
	if p.nc == nil {
		return nil
	}

	err := p.nc.Drain()
	p.nc.Close()

	return err //nolint:wrapcheck
}

func newMsg(prefix string, e Event) (*nats.Msg, error) {
	if e.Name == "" {
		return nil, ErrEmptyName
	}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event")
	}

	msg := nats.NewMsg(prefix + "." + e.Name)
	msg.Data = data
	msg.Header.Set(HeaderEventName, e.Name)
	msg.Header.Set(HeaderEventResource, e.Resource)

	return msg, nil
}

func subjectPrefix(p string) string {
	p = strings.Trim(p, ". ")
	if p == "" {
		return defaultSubjectPrefix
	}

	return p
}
