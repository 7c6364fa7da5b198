// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Project
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a project is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListLimit caps every public listing query. The catalogue is small and the
// site renders everything on one page, so there is no cursor or offset.
const ListLimit = 100

// CreateProject inserts the given project. The caller is responsible for
// assigning the short id and descriptive fields; CreatedAt is filled by GORM.
func CreateProject(ctx context.Context, db *gorm.DB, p *domain.Project) error {
	return db.WithContext(ctx).Create(p).Error
}

// ListProjects returns up to ListLimit projects, optionally filtered by exact
// category match, ordered by creation time descending. It returns an empty
// slice when nothing matches.
func ListProjects(ctx context.Context, db *gorm.DB, category string) ([]domain.Project, error) {
	out := []domain.Project{}
	q := db.WithContext(ctx).Order("created_at desc").Limit(ListLimit)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetProject fetches a single project by its short id, or ErrNotFound.
func GetProject(ctx context.Context, db *gorm.DB, id string) (*domain.Project, error) {
	var p domain.Project
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProjectFields applies a partial merge of the given column/value pairs
// to the project identified by id. Only keys present in fields are touched;
// GORM stamps updated_at alongside. If no row matches, ErrNotFound is
// returned. The caller must guarantee fields is non-empty.
func UpdateProjectFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Project{}).
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

// DeleteProject removes the project identified by id. If no row matches,
// ErrNotFound is returned.
func DeleteProject(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountProjects returns the total number of stored projects. Used by the
// seeder to decide whether demo content is needed.
func CountProjects(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Project{}).Count(&total).Error
	return total, err
}
