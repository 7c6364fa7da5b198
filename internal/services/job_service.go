// Package services – JobService
//
// Job listings follow the same shape as projects: public reads and
// session-gated mutations with explicit partial merges.
package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// JobRepo defines the repository contract required by JobService.
type JobRepo interface {
	CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) error
	ListJobs(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Job, error)
	GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error)
	UpdateJobFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error
	DeleteJob(ctx context.Context, db *gorm.DB, id string) error
}

// JobInput carries the full field set for creating a job listing.
type JobInput struct {
	Title        string
	Department   string
	Location     string
	Type         string
	Description  string
	Requirements []string
	IsActive     bool
}

// JobPatch carries a partial update; nil means "leave untouched".
type JobPatch struct {
	Title        *string
	Department   *string
	Location     *string
	Type         *string
	Description  *string
	Requirements *[]string
	IsActive     *bool
}

// Fields returns the column/value pairs for every supplied field.
func (p JobPatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Department != nil {
		f["department"] = *p.Department
	}
	if p.Location != nil {
		f["location"] = *p.Location
	}
	if p.Type != nil {
		f["type"] = *p.Type
	}
	if p.Description != nil {
		f["description"] = *p.Description
	}
	if p.Requirements != nil {
		f["requirements"] = datatypes.JSONSlice[string](*p.Requirements)
	}
	if p.IsActive != nil {
		f["is_active"] = *p.IsActive
	}
	return f
}

// JobService provides listing operations for open positions.
type JobService struct {
	DB   *gorm.DB
	Repo JobRepo
}

// NewJobService constructs a JobService.
func NewJobService(db *gorm.DB, r JobRepo) *JobService {
	return &JobService{DB: db, Repo: r}
}

// List returns job listings; activeOnly narrows to open positions.
func (s *JobService) List(ctx context.Context, activeOnly bool) ([]domain.Job, error) {
	return s.Repo.ListJobs(ctx, s.DB, activeOnly)
}

// Get fetches one job or ErrJobNotFound.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	j, err := s.Repo.GetJob(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return j, nil
}

// Create assigns a fresh short id, persists the job, and returns it.
func (s *JobService) Create(ctx context.Context, in JobInput) (*domain.Job, error) {
	j := &domain.Job{
		ID:           domain.NewContentID(),
		Title:        in.Title,
		Department:   in.Department,
		Location:     in.Location,
		Type:         in.Type,
		Description:  in.Description,
		Requirements: datatypes.JSONSlice[string](in.Requirements),
		IsActive:     in.IsActive,
	}
	if err := s.Repo.CreateJob(ctx, s.DB, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Update merges the supplied patch fields into the stored job. An empty
// patch yields ErrEmptyUpdate; a missing job yields ErrJobNotFound.
func (s *JobService) Update(ctx context.Context, id string, patch JobPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}
	if err := s.Repo.UpdateJobFields(ctx, s.DB, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	return nil
}

// Delete removes a job or returns ErrJobNotFound.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteJob(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	return nil
}
