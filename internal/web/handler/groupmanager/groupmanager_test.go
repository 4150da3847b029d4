package groupmanager_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakaigo/site-group-manager/internal/config"
	"github.com/sakaigo/site-group-manager/internal/db/controller/site"
	"github.com/sakaigo/site-group-manager/internal/event"
	"github.com/sakaigo/site-group-manager/internal/metrics"
	"github.com/sakaigo/site-group-manager/internal/sitegroup"
	"github.com/sakaigo/site-group-manager/internal/web/handler"
	"github.com/sakaigo/site-group-manager/internal/web/handler/groupmanager"
	"github.com/sakaigo/site-group-manager/internal/web/session"
)

// recordingViews keeps the last rendered template and bindings.
type recordingViews struct {
	template string
	binding  fiber.Map
}

func (v *recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	v.template = name
	v.binding, _ = binding.(fiber.Map)

	_, err := w.Write([]byte(name))

	return err
}

type recordingPoster struct {
	events []event.Event
}

func (p *recordingPoster) Post(_ context.Context, e event.Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPoster) Close() error { return nil }

// memStore keeps one site and hands out copies like a database would.
type memStore struct {
	site    *sitegroup.Site
	users   map[string]*sitegroup.User
	saves   int
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{
		site: &sitegroup.Site{
			ID:         "site-1",
			Title:      "Biology 101",
			Properties: sitegroup.Properties{"term": "Fall 2025"},
			Groups: []*sitegroup.Group{
				{
					ID: "g1", SiteID: "site-1", Title: "beta", Lock: sitegroup.LockNone,
					Properties: sitegroup.Properties{sitegroup.PropWSetupCreated: "true", sitegroup.PropJoinableSet: "Labs"},
					Members:    []sitegroup.Member{{UserID: "u1"}, {UserID: "u2"}},
				},
				{
					ID: "g2", SiteID: "site-1", Title: "Alpha", Lock: sitegroup.LockDelete,
					Properties: sitegroup.Properties{sitegroup.PropWSetupCreated: "TRUE"},
				},
				{
					ID: "g3", SiteID: "site-1", Title: "hidden", Lock: sitegroup.LockNone,
					Properties: sitegroup.Properties{sitegroup.PropWSetupCreated: "false"},
				},
			},
		},
		users: map[string]*sitegroup.User{
			"u1": {ID: "u1", DisplayName: "bob"},
			"u2": {ID: "u2", DisplayName: "Alice"},
		},
	}
}

func (m *memStore) GetSite(_ context.Context, siteID string) (*sitegroup.Site, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}

	if siteID != m.site.ID {
		return nil, sitegroup.ErrNotFound
	}

	cp := *m.site
	cp.Groups = make([]*sitegroup.Group, len(m.site.Groups))

	for i, g := range m.site.Groups {
		gc := *g
		cp.Groups[i] = &gc
	}

	return &cp, nil
}

func (m *memStore) GetUser(_ context.Context, userID string) (*sitegroup.User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}

	return nil, sitegroup.ErrNotFound
}

func (m *memStore) FindGroupByID(_ context.Context, groupID string) (*sitegroup.Group, error) {
	if g, ok := m.site.Group(groupID); ok {
		gc := *g
		return &gc, nil
	}

	return nil, sitegroup.ErrNotFound
}

func (m *memStore) DeleteGroup(_ context.Context, s *sitegroup.Site, g *sitegroup.Group) error {
	return s.DeleteGroup(g)
}

func (m *memStore) SaveSite(_ context.Context, s *sitegroup.Site) error {
	m.saves++
	m.site.Groups = s.Groups
	s.MarkSaved()

	return nil
}

func (m *memStore) ListSites(context.Context, string, int, int) ([]site.Summary, int64, error) {
	return []site.Summary{{Site: m.site, GroupCount: int64(len(m.site.Groups))}}, 1, nil
}

type fixture struct {
	app    *fiber.App
	views  *recordingViews
	store  *memStore
	poster *recordingPoster
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		views:  &recordingViews{},
		store:  newMemStore(),
		poster: &recordingPoster{},
	}

	f.app = fiber.New(fiber.Config{Views: f.views})

	cfg := &config.Config{GroupManager: config.GroupManager{MaxRemoveBatch: 3}}

	svc := &groupmanager.Service{}
	require.NoError(t, svc.Init(f.app, &handler.Deps{
		Cfg:      cfg,
		Store:    f.store,
		Sessions: session.New(nil, 0),
		Events:   f.poster,
	}))

	return f
}

func (f *fixture) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func removeRequest(siteID string, ids ...string) *http.Request {
	form := url.Values{}
	if siteID != "" {
		form.Set(handler.QuerySiteID, siteID)
	}

	for _, id := range ids {
		form.Add(groupmanager.FormDeletedGroupList, id)
	}

	req := httptest.NewRequest(fiber.MethodPost, groupmanager.RouteRemove, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return req
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}

	return nil
}

func TestRootRedirect(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, httptest.NewRequest(fiber.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, groupmanager.Path, resp.Header.Get(fiber.HeaderLocation))
}

func TestIndex_NoSite(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{groupmanager.Path, groupmanager.Path + "?siteId=unknown"} {
		resp := f.do(t, httptest.NewRequest(fiber.MethodGet, target, nil))
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, target)
		assert.Equal(t, handler.SitePickerPath, resp.Header.Get(fiber.HeaderLocation), target)
	}
}

func TestIndex(t *testing.T) {
	f := newFixture(t)

	before := testutil.ToFloat64(metrics.Views)

	resp := f.do(t, httptest.NewRequest(fiber.MethodGet, groupmanager.Path+"?siteId=site-1", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, groupmanager.TemplateName, f.views.template)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.Views), 0)

	rows, ok := f.views.binding["Rows"].([]groupmanager.Row)
	require.True(t, ok)
	require.Len(t, rows, 2)

	assert.Equal(t, "g2", rows[0].Group.ID)
	assert.True(t, rows[0].LockedForDeletion)
	assert.False(t, rows[0].Locked)
	assert.Nil(t, rows[0].JoinableSet)

	assert.Equal(t, "g1", rows[1].Group.ID)
	assert.Equal(t, "Alice, bob", rows[1].Members)
	require.NotNil(t, rows[1].JoinableSet)
	assert.Equal(t, "Labs", *rows[1].JoinableSet)
	assert.Nil(t, rows[1].JoinableSetMax)

	var siteCookie string

	for _, c := range resp.Cookies() {
		if c.Name == handler.CookieSite {
			siteCookie = c.Value
		}
	}

	assert.Equal(t, "site-1", siteCookie)

	// the cookie alone selects the site
	req := httptest.NewRequest(fiber.MethodGet, groupmanager.Path, nil)
	req.AddCookie(&http.Cookie{Name: handler.CookieSite, Value: "site-1"})
	resp = f.do(t, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestIndex_LoadError(t *testing.T) {
	f := newFixture(t)
	f.store.loadErr = assert.AnError

	resp := f.do(t, httptest.NewRequest(fiber.MethodGet, groupmanager.Path+"?siteId=site-1", nil))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, groupmanager.ErrFailedLoadSite, f.views.binding["Error"])
}

func TestRemoveGroups(t *testing.T) {
	f := newFixture(t)

	deleted := testutil.ToFloat64(metrics.GroupRemovals.WithLabelValues(metrics.OutcomeDeleted))
	locked := testutil.ToFloat64(metrics.GroupRemovals.WithLabelValues(metrics.OutcomeLocked))

	resp := f.do(t, removeRequest("site-1", "g1", "g2", "missing"))
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/index?siteId=site-1", resp.Header.Get(fiber.HeaderLocation))

	assert.Equal(t, 1, f.store.saves)

	_, ok := f.store.site.Group("g1")
	assert.False(t, ok)

	_, ok = f.store.site.Group("g2")
	assert.True(t, ok)

	require.Len(t, f.poster.events, 1)
	assert.Equal(t, groupmanager.EventGroupDeleted, f.poster.events[0].Name)
	assert.Equal(t, "/site/site-1/group/g1", f.poster.events[0].Resource)
	assert.Equal(t, "site-1", f.poster.events[0].SiteID)
	assert.True(t, f.poster.events[0].Modify)

	assert.InDelta(t, deleted+1, testutil.ToFloat64(metrics.GroupRemovals.WithLabelValues(metrics.OutcomeDeleted)), 0)
	assert.InDelta(t, locked+1, testutil.ToFloat64(metrics.GroupRemovals.WithLabelValues(metrics.OutcomeLocked)), 0)

	// the next page shows the outcome once
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(fiber.MethodGet, "/index?siteId=site-1", nil)
	req.AddCookie(cookie)
	f.do(t, req)

	flashes, ok := f.views.binding["Flashes"].([]session.Flash)
	require.True(t, ok)
	assert.Equal(t, []session.Flash{
		{Kind: session.KindSuccess, Message: "1 group(s) removed."},
		{Kind: session.KindWarning, Message: `The group "Alpha" is locked and cannot be deleted.`},
	}, flashes)
}

func TestRemoveGroups_NoSave(t *testing.T) {
	tests := []struct {
		name     string
		req      *http.Request
		location string
		flash    bool
	}{
		{
			name:     "no site",
			req:      removeRequest("", "g1"),
			location: handler.SitePickerPath,
		},
		{
			name:     "unknown site",
			req:      removeRequest("site-9", "g1"),
			location: handler.SitePickerPath,
		},
		{
			name:     "no list",
			req:      removeRequest("site-1"),
			location: "/index?siteId=site-1",
		},
		{
			name:     "only locked and unknown",
			req:      removeRequest("site-1", "g2", "nope"),
			location: "/index?siteId=site-1",
			flash:    true,
		},
		{
			name:     "batch too large",
			req:      removeRequest("site-1", "g1", "g3", "a", "b"),
			location: "/index?siteId=site-1",
			flash:    true,
		},
		{
			name:     "id too long",
			req:      removeRequest("site-1", strings.Repeat("x", 100)),
			location: "/index?siteId=site-1",
			flash:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			resp := f.do(t, tt.req)
			assert.Contains(t, []int{fiber.StatusFound, fiber.StatusSeeOther}, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get(fiber.HeaderLocation))
			assert.Zero(t, f.store.saves)
			assert.Empty(t, f.poster.events)
			assert.Len(t, f.store.site.Groups, 3)
			assert.Equal(t, tt.flash, sessionCookie(resp) != nil)
		})
	}
}

func TestRemoveGroups_LoadError(t *testing.T) {
	f := newFixture(t)
	f.store.loadErr = assert.AnError

	resp := f.do(t, removeRequest("site-1", "g1"))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Zero(t, f.store.saves)
}

func TestGroupReference(t *testing.T) {
	assert.Equal(t, "/site/s1/group/g1", groupmanager.GroupReference("s1", "g1"))
}
