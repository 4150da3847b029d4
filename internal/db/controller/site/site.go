// Package site implements the site group collaborators on gorm.
package site

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sakaigo/site-group-manager/internal/db/models"
	"github.com/sakaigo/site-group-manager/internal/sitegroup"
)

const (
	idQueryPattern  = "id = ?"
	memberOrder     = "position ASC, user_id ASC"
	defaultPageSize = 25
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Summary is a site list entry.
type Summary struct {
	Site       *sitegroup.Site
	GroupCount int64
}

// Store loads and persists sites, groups and users.
type Store struct {
	db *gorm.DB
}

// New creates a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetSite loads the site with its properties and groups.
func (s *Store) GetSite(ctx context.Context, siteID string) (*sitegroup.Site, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var m models.Site

	err := s.db.WithContext(ctx).
		Preload("Properties").
		Preload("Groups", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, id ASC") }).
		Preload("Groups.Properties").
		Preload("Groups.Members", func(tx *gorm.DB) *gorm.DB { return tx.Order(memberOrder) }).
		Where(idQueryPattern, siteID).
		First(&m).Error
	if err != nil {
		return nil, notFound(err, "load site "+siteID)
	}

	site := &sitegroup.Site{
		ID:         m.ID,
		Title:      m.Title,
		Properties: siteProperties(m.Properties),
		Groups:     make([]*sitegroup.Group, 0, len(m.Groups)),
	}

	for i := range m.Groups {
		site.Groups = append(site.Groups, toGroup(&m.Groups[i]))
	}

	return site, nil
}

// GetUser resolves a user id.
func (s *Store) GetUser(ctx context.Context, userID string) (*sitegroup.User, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	if err := s.db.WithContext(ctx).Where(idQueryPattern, userID).First(&u).Error; err != nil {
		return nil, notFound(err, "load user "+userID)
	}

	return &sitegroup.User{
		ID:          u.ID,
		EID:         u.EID,
		DisplayName: u.DisplayName(),
	}, nil
}

// FindGroupByID resolves a group id regardless of its site.
func (s *Store) FindGroupByID(ctx context.Context, groupID string) (*sitegroup.Group, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var g models.Group

	err := s.db.WithContext(ctx).
		Preload("Properties").
		Preload("Members", func(tx *gorm.DB) *gorm.DB { return tx.Order(memberOrder) }).
		Where(idQueryPattern, groupID).
		First(&g).Error
	if err != nil {
		return nil, notFound(err, "load group "+groupID)
	}

	return toGroup(&g), nil
}

// DeleteGroup removes the group from the in-memory site. The row is deleted by SaveSite.
func (s *Store) DeleteGroup(_ context.Context, site *sitegroup.Site, group *sitegroup.Group) error {
	if site == nil {
		return sitegroup.ErrNotFound
	}

	return site.DeleteGroup(group) //nolint:wrapcheck
}

// SaveSite persists the pending group deletions of site in one transaction.
func (s *Store) SaveSite(ctx context.Context, site *sitegroup.Site) error {
	if s.db == nil {
		return ErrDBNil
	}

	ids := site.DeletedGroupIDs()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			if err := tx.Where("group_id IN ?", ids).Delete(&models.GroupMember{}).Error; err != nil {
				return pkgerrors.Wrap(err, "delete group members")
			}

			if err := tx.Where("group_id IN ?", ids).Delete(&models.GroupProperty{}).Error; err != nil {
				return pkgerrors.Wrap(err, "delete group properties")
			}

			if err := tx.Where("site_id = ? AND id IN ?", site.ID, ids).Delete(&models.Group{}).Error; err != nil {
				return pkgerrors.Wrap(err, "delete groups")
			}
		}

		return tx.Model(&models.Site{}).Where(idQueryPattern, site.ID).
			Update("title", site.Title).Error
	})
	if err != nil {
		return pkgerrors.Wrapf(err, "save site %s", site.ID)
	}

	site.MarkSaved()

	return nil
}

// ListSites returns one page of sites matching search on id or title, ordered by title.
func (s *Store) ListSites(ctx context.Context, search string, page, pageSize int) ([]Summary, int64, error) {
	if s.db == nil {
		return nil, 0, ErrDBNil
	}

	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	tx := s.db.WithContext(ctx).Model(&models.Site{})

	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(id) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(err, "count sites")
	}

	var sites []models.Site

	err := tx.Preload("Properties").
		Order("title ASC, id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&sites).Error
	if err != nil {
		return nil, 0, pkgerrors.Wrap(err, "list sites")
	}

	out := make([]Summary, 0, len(sites))

	for i := range sites {
		var count int64
		if err = s.db.WithContext(ctx).Model(&models.Group{}).
			Where("site_id = ?", sites[i].ID).Count(&count).Error; err != nil {
			return nil, 0, pkgerrors.Wrap(err, "count groups")
		}

		out = append(out, Summary{
			Site: &sitegroup.Site{
				ID:         sites[i].ID,
				Title:      sites[i].Title,
				Properties: siteProperties(sites[i].Properties),
			},
			GroupCount: count,
		})
	}

	return out, total, nil
}

func toGroup(m *models.Group) *sitegroup.Group {
	g := &sitegroup.Group{
		ID:          m.ID,
		SiteID:      m.SiteID,
		Title:       m.Title,
		Description: m.Description,
		Properties:  make(sitegroup.Properties, len(m.Properties)),
		Members:     make([]sitegroup.Member, 0, len(m.Members)),
		Lock:        sitegroup.ParseLockMode(m.RealmLock),
	}

	for _, p := range m.Properties {
		g.Properties[p.Name] = p.Value
	}

	for _, mem := range m.Members {
		g.Members = append(g.Members, sitegroup.Member{UserID: mem.UserID, Role: mem.Role})
	}

	return g
}

func siteProperties(props []models.SiteProperty) sitegroup.Properties {
	out := make(sitegroup.Properties, len(props))
	for _, p := range props {
		out[p.Name] = p.Value
	}

	return out
}

// notFound maps gorm.ErrRecordNotFound to sitegroup.ErrNotFound.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(sitegroup.ErrNotFound, msg)
	}

	return pkgerrors.Wrap(err, msg)
}
