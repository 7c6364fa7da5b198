// Project HTTP handlers.
//
// This file exposes REST endpoints for the project catalogue:
//   - GET    /projects               (public list, optional category filter)
//   - GET    /projects/{project_id}  (public detail)
//   - POST   /projects               (admin create)
//   - PUT    /projects/{project_id}  (admin partial update)
//   - DELETE /projects/{project_id}  (admin delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Admin routes are gated by the
// session middleware before these handlers run.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaithaa/realty-backend/internal/domain"
	"github.com/advaithaa/realty-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// ProjectService defines project catalogue operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProjectService interface {
	// List returns projects, optionally filtered by exact category.
	List(ctx context.Context, category string) ([]domain.Project, error)
	// Get fetches one project by its short id.
	Get(ctx context.Context, id string) (*domain.Project, error)
	// Create persists a new project and returns it with the assigned id.
	Create(ctx context.Context, in services.ProjectInput) (*domain.Project, error)
	// Update merges the supplied patch fields into the stored project.
	Update(ctx context.Context, id string, patch services.ProjectPatch) error
	// Delete removes a project by its short id.
	Delete(ctx context.Context, id string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for projects, jobs, enquiries, auth, and
// media uploads. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	projectSvc ProjectService
	jobSvc     JobService
	enquirySvc EnquiryService
	authSvc    AuthService
	uploads    UploadStore
	seedFn     func(ctx context.Context) (bool, error)
	// basePath prefixes upload URLs returned to clients (e.g. "/api").
	basePath string
}

// New constructs and returns a Handlers instance bound to the given services.
// seedFn populates demo content on request; it may be nil when seeding is
// not exposed. basePath is the API mount prefix used when building public
// upload URLs.
func New(
	projectSvc ProjectService,
	jobSvc JobService,
	enquirySvc EnquiryService,
	authSvc AuthService,
	uploads UploadStore,
	seedFn func(ctx context.Context) (bool, error),
	basePath string,
) *Handlers {
	return &Handlers{
		projectSvc: projectSvc,
		jobSvc:     jobSvc,
		enquirySvc: enquirySvc,
		authSvc:    authSvc,
		uploads:    uploads,
		seedFn:     seedFn,
		basePath:   basePath,
	}
}

//
// DTOs
//

// CreateProjectRequest is the JSON payload for creating a project.
type CreateProjectRequest struct {
	Title       string         `json:"title" binding:"required,min=1,max=255" example:"Sunrise Towers"`
	Description string         `json:"description" binding:"required" example:"Premium 3BHK apartments"`
	Category    string         `json:"category" binding:"required,max=64" example:"residential"`
	SubCategory string         `json:"sub_category" example:"Apartments"`
	Location    string         `json:"location" example:"Alkapuri, Hyderabad"`
	ImageURL    string         `json:"image_url" example:"/api/uploads/ab12cd34ef56.jpg"`
	Features    []string       `json:"features"`
	Highlights  map[string]any `json:"highlights"`
	IsFeatured  bool           `json:"is_featured"`
}

// UpdateProjectRequest is the JSON payload for partially updating a project.
// Absent fields keep their stored values; supplying no field at all is an
// error.
type UpdateProjectRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	SubCategory *string         `json:"sub_category"`
	Location    *string         `json:"location"`
	ImageURL    *string         `json:"image_url"`
	Features    *[]string       `json:"features"`
	Highlights  *map[string]any `json:"highlights"`
	IsFeatured  *bool           `json:"is_featured"`
}

// patch converts the request into the service-layer patch form.
func (r UpdateProjectRequest) patch() services.ProjectPatch {
	return services.ProjectPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Features:    r.Features,
		Highlights:  r.Highlights,
		IsFeatured:  r.IsFeatured,
	}
}

//
// Handlers
//

// ListProjects godoc
// @ID          listProjects
// @Summary     List projects
// @Description Returns the project catalogue, newest first. An optional category filter narrows the result.
// @Tags        Projects
// @Produce     json
//
// @Param       category  query  string  false  "Exact category filter"  example(residential)
//
// @Success     200  {array}   domain.Project
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /projects [get]
func (h *Handlers) ListProjects(c *gin.Context) {
	items, err := h.projectSvc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetProject godoc
// @ID          getProject
// @Summary     Get a project
// @Description Returns one project by its short id.
// @Tags        Projects
// @Produce     json
//
// @Param       project_id  path  string  true  "Project ID"  example(ab12cd34)
//
// @Success     200  {object}  domain.Project
// @Failure     404  {object}  handlers.ErrorResponse  "Project not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /projects/{project_id} [get]
func (h *Handlers) GetProject(c *gin.Context) {
	p, err := h.projectSvc.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "project not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// CreateProject godoc
// @ID          createProject
// @Summary     Create a project
// @Description Creates a project and returns the stored resource. Admin session required.
// @Tags        Projects
// @Accept      json
// @Produce     json
//
// @Param       token  query  string  false  "Admin session token"
// @Param       body   body   handlers.CreateProjectRequest  true  "Project payload"
//
// @Success     201  {object}  domain.Project
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /projects [post]
func (h *Handlers) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.projectSvc.Create(c.Request.Context(), services.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Features:    req.Features,
		Highlights:  req.Highlights,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, p)
}

// UpdateProject godoc
// @ID          updateProject
// @Summary     Update a project
// @Description Partially updates a project; absent fields are left untouched. Admin session required.
// @Tags        Projects
// @Accept      json
// @Produce     json
//
// @Param       token       query  string  false  "Admin session token"
// @Param       project_id  path   string  true   "Project ID"  example(ab12cd34)
// @Param       body        body   handlers.UpdateProjectRequest  true  "Fields to update"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request or empty update"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Project not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /projects/{project_id} [put]
func (h *Handlers) UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	err := h.projectSvc.Update(c.Request.Context(), c.Param("project_id"), req.patch())
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrEmptyUpdate):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no fields to update")
	case errors.Is(err, services.ErrProjectNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "project not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
	}
}

// DeleteProject godoc
// @ID          deleteProject
// @Summary     Delete a project
// @Description Removes a project by its short id. Admin session required.
// @Tags        Projects
// @Produce     json
//
// @Param       token       query  string  false  "Admin session token"
// @Param       project_id  path   string  true   "Project ID"  example(ab12cd34)
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Project not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /projects/{project_id} [delete]
func (h *Handlers) DeleteProject(c *gin.Context) {
	err := h.projectSvc.Delete(c.Request.Context(), c.Param("project_id"))
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrProjectNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "project not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
	}
}
