// Job HTTP handlers.
//
// This file exposes REST endpoints for career listings:
//   - GET    /jobs           (public list, active positions by default)
//   - GET    /jobs/{job_id}  (public detail)
//   - POST   /jobs           (admin create)
//   - PUT    /jobs/{job_id}  (admin partial update)
//   - DELETE /jobs/{job_id}  (admin delete)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/advaithaa/realty-backend/internal/domain"
	"github.com/advaithaa/realty-backend/internal/services"
)

// JobService defines career listing operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type JobService interface {
	// List returns job listings; activeOnly narrows to open positions.
	List(ctx context.Context, activeOnly bool) ([]domain.Job, error)
	// Get fetches one job by its short id.
	Get(ctx context.Context, id string) (*domain.Job, error)
	// Create persists a new job and returns it with the assigned id.
	Create(ctx context.Context, in services.JobInput) (*domain.Job, error)
	// Update merges the supplied patch fields into the stored job.
	Update(ctx context.Context, id string, patch services.JobPatch) error
	// Delete removes a job by its short id.
	Delete(ctx context.Context, id string) error
}

//
// DTOs
//

// CreateJobRequest is the JSON payload for creating a job listing.
type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=255" example:"Senior Civil Engineer"`
	Department   string   `json:"department" binding:"required,max=64" example:"Engineering"`
	Location     string   `json:"location" example:"Hyderabad"`
	Type         string   `json:"type" example:"Full-time"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements"`
	IsActive     *bool    `json:"is_active"`
}

// UpdateJobRequest is the JSON payload for partially updating a job listing.
// Absent fields keep their stored values.
type UpdateJobRequest struct {
	Title        *string   `json:"title"`
	Department   *string   `json:"department"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
	IsActive     *bool     `json:"is_active"`
}

// patch converts the request into the service-layer patch form.
func (r UpdateJobRequest) patch() services.JobPatch {
	return services.JobPatch{
		Title:        r.Title,
		Department:   r.Department,
		Location:     r.Location,
		Type:         r.Type,
		Description:  r.Description,
		Requirements: r.Requirements,
		IsActive:     r.IsActive,
	}
}

//
// Handlers
//

// ListJobs godoc
// @ID          listJobs
// @Summary     List jobs
// @Description Returns career listings, newest first. active_only defaults to true; pass active_only=false to include closed positions.
// @Tags        Jobs
// @Produce     json
//
// @Param       active_only  query  bool  false  "Only open positions"  default(true)
//
// @Success     200  {array}   domain.Job
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /jobs [get]
func (h *Handlers) ListJobs(c *gin.Context) {
	activeOnly := true
	if raw := c.Query("active_only"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			activeOnly = v
		}
	}

	items, err := h.jobSvc.List(c.Request.Context(), activeOnly)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetJob godoc
// @ID          getJob
// @Summary     Get a job
// @Description Returns one career listing by its short id.
// @Tags        Jobs
// @Produce     json
//
// @Param       job_id  path  string  true  "Job ID"  example(ef56ab78)
//
// @Success     200  {object}  domain.Job
// @Failure     404  {object}  handlers.ErrorResponse  "Job not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /jobs/{job_id} [get]
func (h *Handlers) GetJob(c *gin.Context) {
	j, err := h.jobSvc.Get(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "job not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, j)
}

// CreateJob godoc
// @ID          createJob
// @Summary     Create a job
// @Description Creates a career listing and returns the stored resource. Admin session required.
// @Tags        Jobs
// @Accept      json
// @Produce     json
//
// @Param       token  query  string  false  "Admin session token"
// @Param       body   body   handlers.CreateJobRequest  true  "Job payload"
//
// @Success     201  {object}  domain.Job
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /jobs [post]
func (h *Handlers) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// New listings default to open unless the payload says otherwise.
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	j, err := h.jobSvc.Create(c.Request.Context(), services.JobInput{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		IsActive:     active,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, j)
}

// UpdateJob godoc
// @ID          updateJob
// @Summary     Update a job
// @Description Partially updates a career listing; absent fields are left untouched. Admin session required.
// @Tags        Jobs
// @Accept      json
// @Produce     json
//
// @Param       token   query  string  false  "Admin session token"
// @Param       job_id  path   string  true   "Job ID"  example(ef56ab78)
// @Param       body    body   handlers.UpdateJobRequest  true  "Fields to update"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request or empty update"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Job not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /jobs/{job_id} [put]
func (h *Handlers) UpdateJob(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	err := h.jobSvc.Update(c.Request.Context(), c.Param("job_id"), req.patch())
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrEmptyUpdate):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no fields to update")
	case errors.Is(err, services.ErrJobNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "job not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
	}
}

// DeleteJob godoc
// @ID          deleteJob
// @Summary     Delete a job
// @Description Removes a career listing by its short id. Admin session required.
// @Tags        Jobs
// @Produce     json
//
// @Param       token   query  string  false  "Admin session token"
// @Param       job_id  path   string  true   "Job ID"  example(ef56ab78)
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Job not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /jobs/{job_id} [delete]
func (h *Handlers) DeleteJob(c *gin.Context) {
	err := h.jobSvc.Delete(c.Request.Context(), c.Param("job_id"))
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrJobNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "job not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
	}
}
