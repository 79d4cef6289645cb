package database

import (
	"fmt"
	"strconv"

	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
)

const (
	SeqUsers        = "users"
	SeqJobs         = "jobs"
	SeqApplications = "applications"
)

// NextID advances the named sequence inside tx and returns the new value with
// its string form. Values only grow, so an id freed by a delete is never
// handed out again.
func NextID(tx *gorm.DB, name string) (uint64, string, error) {
	seq := models.Sequence{Name: name}
	if err := tx.Where(models.Sequence{Name: name}).FirstOrCreate(&seq).Error; err != nil {
		return 0, "", fmt.Errorf("load sequence %s: %w", name, err)
	}
	err := tx.Model(&models.Sequence{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + ?", 1)).Error
	if err != nil {
		return 0, "", fmt.Errorf("advance sequence %s: %w", name, err)
	}
	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return 0, "", fmt.Errorf("read sequence %s: %w", name, err)
	}
	return seq.Value, strconv.FormatUint(seq.Value, 10), nil
}

// SetSequence moves the named sequence to value; it never moves it backwards.
func SetSequence(tx *gorm.DB, name string, value uint64) error {
	seq := models.Sequence{Name: name}
	if err := tx.Where(models.Sequence{Name: name}).FirstOrCreate(&seq).Error; err != nil {
		return fmt.Errorf("load sequence %s: %w", name, err)
	}
	if seq.Value >= value {
		return nil
	}
	return tx.Model(&models.Sequence{}).Where("name = ?", name).UpdateColumn("value", value).Error
}
