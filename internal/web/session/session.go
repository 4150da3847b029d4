// Package session keeps per browser state in the fiber session store.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/pkg/errors"
)

const (
	// CookieName is the session cookie.
	CookieName = "sgm_session"

	flashKey = "flash"

	defaultExpiry = 30 * time.Minute
)

// Flash kinds rendered as alert classes.
const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindWarning = "warning"
	KindError   = "danger"
)

// Flash is a message shown once on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Store wraps the fiber session store.
type Store struct {
	*session.Store
}

// New creates a session store on storage. A nil storage keeps sessions in memory.
func New(storage fiber.Storage, expiry time.Duration) *Store {
	if expiry <= 0 {
		expiry = defaultExpiry
	}

	return &Store{
		Store: session.New(session.Config{
			Storage:        storage,
			Expiration:     expiry,
			KeyLookup:      "cookie:" + CookieName,
			CookieHTTPOnly: true,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
		}),
	}
}

// AddFlash queues messages for the next page of this browser.
func (s *Store) AddFlash(c *fiber.Ctx, flashes ...Flash) error {
	if len(flashes) == 0 {
		return nil
	}

	sess, err := s.Get(c)
	if err != nil {
		return errors.Wrap(err, "get session")
	}

	queued := decode(sess.Get(flashKey))
	queued = append(queued, flashes...)

	raw, err := json.Marshal(queued)
	if err != nil {
		return errors.Wrap(err, "encode flashes")
	}

	sess.Set(flashKey, string(raw))

	return errors.Wrap(sess.Save(), "save session")
}

// PopFlashes returns and clears the queued messages.
func (s *Store) PopFlashes(c *fiber.Ctx) ([]Flash, error) {
	sess, err := s.Get(c)
	if err != nil {
		return nil, errors.Wrap(err, "get session")
	}

	queued := decode(sess.Get(flashKey))
	if len(queued) == 0 {
		return nil, nil
	}

	sess.Delete(flashKey)

	return queued, errors.Wrap(sess.Save(), "save session")
}

func decode(v any) []Flash {
	raw, ok := v.(string)
	if !ok || raw == "" {
		return nil
	}

	var out []Flash
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}

	return out
}
