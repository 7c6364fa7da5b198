// Package services – ProjectService
//
// This file implements the ProjectService, which manages the project
// catalogue shown on the public site and edited through the admin surface.
// Creation assigns the application short id; updates are partial merges of
// the explicitly supplied fields only, and an update that supplies nothing
// is rejected with ErrEmptyUpdate rather than silently accepted.
//
// Service-level errors (e.g., ErrProjectNotFound) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// ProjectRepo defines the repository contract required by ProjectService.
// Implementations are responsible for persistence of project records.
type ProjectRepo interface {
	// CreateProject inserts a new project row.
	CreateProject(ctx context.Context, db *gorm.DB, p *domain.Project) error

	// ListProjects returns projects, optionally filtered by category.
	ListProjects(ctx context.Context, db *gorm.DB, category string) ([]domain.Project, error)

	// GetProject fetches a project by its short id.
	GetProject(ctx context.Context, db *gorm.DB, id string) (*domain.Project, error)

	// UpdateProjectFields applies a partial column merge to one project.
	UpdateProjectFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error

	// DeleteProject removes a project by its short id.
	DeleteProject(ctx context.Context, db *gorm.DB, id string) error
}

// ProjectInput carries the full field set for creating a project.
type ProjectInput struct {
	Title       string
	Description string
	Category    string
	SubCategory string
	Location    string
	ImageURL    string
	Features    []string
	Highlights  map[string]any
	IsFeatured  bool
}

// ProjectPatch carries a partial update. A nil field means "leave the stored
// value untouched"; a non-nil field overwrites it, including overwriting
// with a zero value. Presence is the only signal that matters.
type ProjectPatch struct {
	Title       *string
	Description *string
	Category    *string
	SubCategory *string
	Location    *string
	ImageURL    *string
	Features    *[]string
	Highlights  *map[string]any
	IsFeatured  *bool
}

// Fields returns the column/value pairs for every supplied field. An empty
// map means the patch carries nothing to merge.
func (p ProjectPatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Description != nil {
		f["description"] = *p.Description
	}
	if p.Category != nil {
		f["category"] = *p.Category
	}
	if p.SubCategory != nil {
		f["sub_category"] = *p.SubCategory
	}
	if p.Location != nil {
		f["location"] = *p.Location
	}
	if p.ImageURL != nil {
		f["image_url"] = *p.ImageURL
	}
	if p.Features != nil {
		f["features"] = datatypes.JSONSlice[string](*p.Features)
	}
	if p.Highlights != nil {
		f["highlights"] = datatypes.JSONMap(*p.Highlights)
	}
	if p.IsFeatured != nil {
		f["is_featured"] = *p.IsFeatured
	}
	return f
}

// ProjectService provides catalogue operations for projects. Reads are
// public; Create, Update and Delete are reached only through the
// session-gated admin surface.
type ProjectService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the project repository used by this service.
	Repo ProjectRepo
}

// NewProjectService constructs a ProjectService.
func NewProjectService(db *gorm.DB, r ProjectRepo) *ProjectService {
	return &ProjectService{DB: db, Repo: r}
}

// List returns the catalogue, optionally filtered by exact category.
func (s *ProjectService) List(ctx context.Context, category string) ([]domain.Project, error) {
	return s.Repo.ListProjects(ctx, s.DB, category)
}

// Get fetches one project or ErrProjectNotFound.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.Repo.GetProject(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create assigns a fresh short id, persists the project, and returns it.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*domain.Project, error) {
	p := &domain.Project{
		ID:          domain.NewContentID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		Features:    datatypes.JSONSlice[string](in.Features),
		Highlights:  datatypes.JSONMap(in.Highlights),
		IsFeatured:  in.IsFeatured,
	}
	if err := s.Repo.CreateProject(ctx, s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update merges the supplied patch fields into the stored project. An empty
// patch yields ErrEmptyUpdate before any store access; a missing project
// yields ErrProjectNotFound.
func (s *ProjectService) Update(ctx context.Context, id string, patch ProjectPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}
	if err := s.Repo.UpdateProjectFields(ctx, s.DB, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}

// Delete removes a project or returns ErrProjectNotFound.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteProject(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}
