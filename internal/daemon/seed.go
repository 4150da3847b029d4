package daemon

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sakaigo/site-group-manager/internal/db/models"
	"github.com/sakaigo/site-group-manager/internal/sitegroup"
)

// seed inserts demo sites for dev mode if the site table is empty.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Site{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count sites")
	}

	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(demoUsers()).Error; err != nil {
			return errors.Wrap(err, "seed users")
		}

		if err := tx.Create(demoSites()).Error; err != nil {
			return errors.Wrap(err, "seed sites")
		}

		return nil
	})
}

func demoUsers() []models.User {
	return []models.User{
		{ID: "u-ada", EID: "alovelace", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "u-alan", EID: "aturing", FirstName: "Alan", LastName: "Turing"},
		{ID: "u-grace", EID: "ghopper", FirstName: "Grace", LastName: "Hopper"},
		{ID: "u-edsger", EID: "edijkstra"},
	}
}

func setupProps(extra ...models.GroupProperty) []models.GroupProperty {
	return append([]models.GroupProperty{{Name: sitegroup.PropWSetupCreated, Value: "true"}}, extra...)
}

func demoSites() []models.Site {
	return []models.Site{
		{
			ID:    "bio-101-fa25",
			Title: "Biology 101",
			Type:  "course",
			Properties: []models.SiteProperty{
				{Name: "term_eid", Value: "FA25"},
				{Name: "term", Value: "Fall 2025"},
			},
			Groups: []models.Group{
				{
					ID: "bio-lab-a", Title: "Lab A", RealmLock: string(sitegroup.LockNone),
					Properties: setupProps(
						models.GroupProperty{Name: sitegroup.PropJoinableSet, Value: "Labs"},
						models.GroupProperty{Name: sitegroup.PropJoinableSetMax, Value: "20"},
					),
					Members: []models.GroupMember{
						{UserID: "u-grace", Role: "Student", Position: 0},
						{UserID: "u-ada", Role: "Student", Position: 1},
					},
				},
				{
					ID: "bio-lab-b", Title: "lab B", RealmLock: string(sitegroup.LockNone),
					Properties: setupProps(
						models.GroupProperty{Name: sitegroup.PropJoinableSet, Value: "Labs"},
						models.GroupProperty{Name: sitegroup.PropJoinableSetMax, Value: "20"},
					),
					Members: []models.GroupMember{{UserID: "u-alan", Role: "Student"}},
				},
				{
					ID: "bio-graded", Title: "Graded Section", RealmLock: string(sitegroup.LockDelete),
					Properties: setupProps(),
					Members: []models.GroupMember{
						{UserID: "u-edsger", Role: "Teaching Assistant"},
						{UserID: "u-missing", Role: "Student"},
					},
				},
				{
					ID: "bio-roster", Title: "Roster Section 01", RealmLock: string(sitegroup.LockAll),
					Properties: []models.GroupProperty{{Name: sitegroup.PropWSetupCreated, Value: "false"}},
				},
			},
		},
		{
			ID:    "chem-200-sp26",
			Title: "Chemistry 200",
			Type:  "course",
			Properties: []models.SiteProperty{
				{Name: "term_eid", Value: "SP26"},
			},
			Groups: []models.Group{
				{ID: "chem-team-1", Title: "Team 1", RealmLock: string(sitegroup.LockModify), Properties: setupProps()},
			},
		},
		{
			ID:    "research-lab",
			Title: "Research Lab",
			Type:  "project",
		},
	}
}
