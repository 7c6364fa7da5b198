// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Job model.
//
// Error semantics match the project repository: missing rows surface as
// ErrNotFound, everything else is the raw gorm error.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// CreateJob inserts the given job listing.
func CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) error {
	return db.WithContext(ctx).Create(j).Error
}

// ListJobs returns up to ListLimit jobs ordered by creation time descending.
// When activeOnly is true (the public default) only open positions are
// returned.
func ListJobs(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Job, error) {
	out := []domain.Job{}
	q := db.WithContext(ctx).Order("created_at desc").Limit(ListLimit)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetJob fetches a single job by its short id, or ErrNotFound.
func GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error) {
	var j domain.Job
	if err := db.WithContext(ctx).Where("id = ?", id).First(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

// UpdateJobFields applies a partial merge of the given column/value pairs to
// the job identified by id, stamping updated_at. ErrNotFound if no row
// matches. The caller must guarantee fields is non-empty.
func UpdateJobFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Job{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteJob removes the job identified by id, or returns ErrNotFound.
func DeleteJob(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
