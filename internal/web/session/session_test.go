package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashes(t *testing.T) {
	store := New(nil, 0)
	app := fiber.New()

	app.Post("/add", func(c *fiber.Ctx) error {
		if err := store.AddFlash(c,
			Flash{Kind: KindWarning, Message: "first"},
			Flash{Kind: KindError, Message: "second"},
		); err != nil {
			return err
		}

		return store.AddFlash(c, Flash{Kind: KindInfo, Message: "third"})
	})

	app.Get("/pop", func(c *fiber.Ctx) error {
		flashes, err := store.PopFlashes(c)
		if err != nil {
			return err
		}

		return c.JSON(flashes)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/add", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookie *http.Cookie

	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			cookie = ck
		}
	}

	require.NotNil(t, cookie)

	pop := func() string {
		req := httptest.NewRequest(fiber.MethodGet, "/pop", nil)
		req.AddCookie(cookie)

		resp, err := app.Test(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		return string(body)
	}

	assert.JSONEq(t,
		`[{"kind":"warning","message":"first"},{"kind":"danger","message":"second"},{"kind":"info","message":"third"}]`,
		pop())

	// shown once
	assert.Equal(t, "null", pop())
}

func TestAddFlash_Empty(t *testing.T) {
	store := New(nil, 0)
	app := fiber.New()

	app.Get("/", func(c *fiber.Ctx) error {
		return store.AddFlash(c)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
}

func TestDecode(t *testing.T) {
	assert.Nil(t, decode(nil))
	assert.Nil(t, decode(42))
	assert.Nil(t, decode("not json"))
	assert.Equal(t, []Flash{{Kind: KindInfo, Message: "x"}}, decode(`[{"kind":"info","message":"x"}]`))
}
