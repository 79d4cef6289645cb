package database

import (
	"context"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/catalog"
	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
)

// Seed loads c into an empty database. It reports false without touching
// anything when users already exist.
func Seed(ctx context.Context, db *gorm.DB, c catalog.Catalog) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, fmt.Errorf("invalid catalog: %w", err)
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(c.Users) > 0 {
			if err := tx.Create(&c.Users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		if len(c.Jobs) > 0 {
			if err := tx.Create(&c.Jobs).Error; err != nil {
				return fmt.Errorf("seed jobs: %w", err)
			}
		}
		if len(c.Applications) > 0 {
			if err := tx.Create(&c.Applications).Error; err != nil {
				return fmt.Errorf("seed applications: %w", err)
			}
		}

		var maxUser, maxJob, maxApp uint64
		for _, u := range c.Users {
			maxUser = max(maxUser, u.Seq)
		}
		for _, j := range c.Jobs {
			maxJob = max(maxJob, j.Seq)
		}
		for _, a := range c.Applications {
			maxApp = max(maxApp, a.Seq)
		}
		if err := SetSequence(tx, SeqUsers, maxUser); err != nil {
			return err
		}
		if err := SetSequence(tx, SeqJobs, maxJob); err != nil {
			return err
		}
		return SetSequence(tx, SeqApplications, maxApp)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
