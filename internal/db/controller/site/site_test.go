package site

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sakaigo/site-group-manager/internal/db/models"
	"github.com/sakaigo/site-group-manager/internal/sitegroup"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// every pool connection would get its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...), "failed to migrate test database")

	return db
}

// seedSite inserts a site with three groups and two users.
func seedSite(t *testing.T, db *gorm.DB) {
	t.Helper()

	base := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	users := []models.User{
		{ID: "u1", EID: "jdoe", FirstName: "Jane", LastName: "Doe"},
		{ID: "u2", EID: "bsmith"},
	}
	require.NoError(t, db.Create(&users).Error)

	site := models.Site{
		ID:    "site-1",
		Title: "Biology 101",
		Properties: []models.SiteProperty{
			{Name: "term_eid", Value: "FA25"},
			{Name: "term", Value: "Fall 2025"},
		},
		Groups: []models.Group{
			{
				ID: "g1", Title: "Lab A", RealmLock: "NONE", CreatedAt: base,
				Properties: []models.GroupProperty{
					{Name: sitegroup.PropWSetupCreated, Value: "true"},
					{Name: sitegroup.PropJoinableSet, Value: "Labs"},
				},
				Members: []models.GroupMember{
					{UserID: "u2", Role: "Student", Position: 1},
					{UserID: "u1", Role: "Student", Position: 0},
				},
			},
			{ID: "g2", Title: "Lab B", RealmLock: "DELETE", CreatedAt: base.Add(time.Minute)},
			{
				ID: "g3", Title: "Lab C", RealmLock: "", CreatedAt: base.Add(2 * time.Minute),
				Members: []models.GroupMember{{UserID: "u1", Role: "TA"}},
			},
		},
	}
	require.NoError(t, db.Create(&site).Error)

	require.NoError(t, db.Create(&models.Site{ID: "site-2", Title: "Chemistry 200"}).Error)
}

func TestNilDB(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	_, err := s.GetSite(ctx, "x")
	require.ErrorIs(t, err, ErrDBNil)

	_, err = s.GetUser(ctx, "x")
	require.ErrorIs(t, err, ErrDBNil)

	_, err = s.FindGroupByID(ctx, "x")
	require.ErrorIs(t, err, ErrDBNil)

	require.ErrorIs(t, s.SaveSite(ctx, &sitegroup.Site{}), ErrDBNil)

	_, _, err = s.ListSites(ctx, "", 1, 10)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestGetSite(t *testing.T) {
	db := setupTestDB(t)
	seedSite(t, db)

	s := New(db)

	site, err := s.GetSite(context.Background(), "site-1")
	require.NoError(t, err)

	assert.Equal(t, "Biology 101", site.Title)
	assert.Equal(t, "FA25", site.Properties["term_eid"])
	require.Len(t, site.Groups, 3)

	g1 := site.Groups[0]
	assert.Equal(t, "g1", g1.ID)
	assert.Equal(t, "site-1", g1.SiteID)
	assert.Equal(t, sitegroup.LockNone, g1.Lock)
	assert.True(t, g1.Properties.Flag(sitegroup.PropWSetupCreated))
	assert.Equal(t, []sitegroup.Member{
		{UserID: "u1", Role: "Student"},
		{UserID: "u2", Role: "Student"},
	}, g1.Members)

	assert.Equal(t, sitegroup.LockDelete, site.Groups[1].Lock)
	assert.Equal(t, sitegroup.LockNone, site.Groups[2].Lock)

	_, err = s.GetSite(context.Background(), "missing")
	require.ErrorIs(t, err, sitegroup.ErrNotFound)
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	seedSite(t, db)

	s := New(db)

	u, err := s.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &sitegroup.User{ID: "u1", EID: "jdoe", DisplayName: "Jane Doe"}, u)

	u, err = s.GetUser(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, "bsmith", u.DisplayName)

	_, err = s.GetUser(context.Background(), "nobody")
	require.ErrorIs(t, err, sitegroup.ErrNotFound)
}

func TestFindGroupByID(t *testing.T) {
	db := setupTestDB(t)
	seedSite(t, db)

	s := New(db)

	g, err := s.FindGroupByID(context.Background(), "g2")
	require.NoError(t, err)
	assert.Equal(t, "Lab B", g.Title)
	assert.Equal(t, sitegroup.LockDelete, g.Lock)
	assert.Empty(t, g.Members)

	_, err = s.FindGroupByID(context.Background(), "nope")
	require.ErrorIs(t, err, sitegroup.ErrNotFound)
}

func TestRemoveGroupsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seedSite(t, db)

	s := New(db)
	ctx := context.Background()

	site, err := s.GetSite(ctx, "site-1")
	require.NoError(t, err)

	res, err := sitegroup.NewRemover(s, s, s).RemoveGroups(ctx, site, []string{"g1", "g2", "missing"})
	require.NoError(t, err)

	assert.True(t, res.AnyDeleted)
	assert.Equal(t, []string{"g1"}, res.Deleted)
	assert.Equal(t, []string{"g2"}, res.Locked)
	assert.Equal(t, []string{"missing"}, res.NotFound)
	assert.Empty(t, site.DeletedGroupIDs())

	reloaded, err := s.GetSite(ctx, "site-1")
	require.NoError(t, err)
	require.Len(t, reloaded.Groups, 2)
	assert.Equal(t, "g2", reloaded.Groups[0].ID)
	assert.Equal(t, "g3", reloaded.Groups[1].ID)

	var props, members int64
	require.NoError(t, db.Model(&models.GroupProperty{}).Where("group_id = ?", "g1").Count(&props).Error)
	require.NoError(t, db.Model(&models.GroupMember{}).Where("group_id = ?", "g1").Count(&members).Error)
	assert.Zero(t, props)
	assert.Zero(t, members)

	// g3 keeps its membership
	require.NoError(t, db.Model(&models.GroupMember{}).Where("group_id = ?", "g3").Count(&members).Error)
	assert.EqualValues(t, 1, members)
}

func TestDeleteGroup_OtherSite(t *testing.T) {
	db := setupTestDB(t)
	seedSite(t, db)

	s := New(db)
	ctx := context.Background()

	other, err := s.GetSite(ctx, "site-2")
	require.NoError(t, err)

	g, err := s.FindGroupByID(ctx, "g1")
	require.NoError(t, err)

	require.ErrorIs(t, s.DeleteGroup(ctx, other, g), sitegroup.ErrNotFound)
	require.ErrorIs(t, s.DeleteGroup(ctx, nil, g), sitegroup.ErrNotFound)
}

func TestListSites(t *testing.T) {
	db := setupTestDB(t)
	seedSite(t, db)

	s := New(db)

	tests := []struct {
		name      string
		search    string
		page      int
		pageSize  int
		wantIDs   []string
		wantTotal int64
	}{
		{name: "all", page: 1, pageSize: 10, wantIDs: []string{"site-1", "site-2"}, wantTotal: 2},
		{name: "search title ignores case", search: "CHEM", page: 1, pageSize: 10, wantIDs: []string{"site-2"}, wantTotal: 1},
		{name: "search id", search: "site-1", page: 1, pageSize: 10, wantIDs: []string{"site-1"}, wantTotal: 1},
		{name: "second page", page: 2, pageSize: 1, wantIDs: []string{"site-2"}, wantTotal: 2},
		{name: "defaults", page: 0, pageSize: 0, wantIDs: []string{"site-1", "site-2"}, wantTotal: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := s.ListSites(context.Background(), tt.search, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			ids := make([]string, 0, len(got))
			for _, sum := range got {
				ids = append(ids, sum.Site.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	got, _, err := s.ListSites(context.Background(), "biology", 1, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 3, got[0].GroupCount)
	assert.Equal(t, "Fall 2025", got[0].Site.Properties["term"])
}
