package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/advaithaa/realty-backend/internal/domain"
	"github.com/advaithaa/realty-backend/internal/repo"
	"github.com/advaithaa/realty-backend/internal/services"
	"github.com/advaithaa/realty-backend/internal/storage"
)

// ---------- test DB + repo shims ----------

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Minimal shims implementing the services repo contracts via the repo
// package's free functions (mirrors how the router wires them).
type testProjectRepo struct{}

func (testProjectRepo) CreateProject(ctx context.Context, db *gorm.DB, p *domain.Project) error {
	return repo.CreateProject(ctx, db, p)
}

func (testProjectRepo) ListProjects(ctx context.Context, db *gorm.DB, category string) ([]domain.Project, error) {
	return repo.ListProjects(ctx, db, category)
}

func (testProjectRepo) GetProject(ctx context.Context, db *gorm.DB, id string) (*domain.Project, error) {
	return repo.GetProject(ctx, db, id)
}

func (testProjectRepo) UpdateProjectFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateProjectFields(ctx, db, id, fields)
}

func (testProjectRepo) DeleteProject(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteProject(ctx, db, id)
}

type testJobRepo struct{}

func (testJobRepo) CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) error {
	return repo.CreateJob(ctx, db, j)
}

func (testJobRepo) ListJobs(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Job, error) {
	return repo.ListJobs(ctx, db, activeOnly)
}

func (testJobRepo) GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error) {
	return repo.GetJob(ctx, db, id)
}

func (testJobRepo) UpdateJobFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateJobFields(ctx, db, id, fields)
}

func (testJobRepo) DeleteJob(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteJob(ctx, db, id)
}

type testEnquiryRepo struct{}

func (testEnquiryRepo) CreateEnquiry(ctx context.Context, db *gorm.DB, e *domain.Enquiry) error {
	return repo.CreateEnquiry(ctx, db, e)
}

// ---------- tiny stubs for other services ----------

type stubProjectSvc struct {
	list   func(context.Context, string) ([]domain.Project, error)
	get    func(context.Context, string) (*domain.Project, error)
	create func(context.Context, services.ProjectInput) (*domain.Project, error)
	update func(context.Context, string, services.ProjectPatch) error
	del    func(context.Context, string) error
}

func (s stubProjectSvc) List(ctx context.Context, cat string) ([]domain.Project, error) {
	if s.list != nil {
		return s.list(ctx, cat)
	}
	return nil, nil
}

func (s stubProjectSvc) Get(ctx context.Context, id string) (*domain.Project, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Project{ID: id}, nil
}

func (s stubProjectSvc) Create(ctx context.Context, in services.ProjectInput) (*domain.Project, error) {
	if s.create != nil {
		return s.create(ctx, in)
	}
	return &domain.Project{ID: "p1", Title: in.Title}, nil
}

func (s stubProjectSvc) Update(ctx context.Context, id string, patch services.ProjectPatch) error {
	if s.update != nil {
		return s.update(ctx, id, patch)
	}
	return nil
}

func (s stubProjectSvc) Delete(ctx context.Context, id string) error {
	if s.del != nil {
		return s.del(ctx, id)
	}
	return nil
}

type stubJobSvc struct {
	list   func(context.Context, bool) ([]domain.Job, error)
	get    func(context.Context, string) (*domain.Job, error)
	create func(context.Context, services.JobInput) (*domain.Job, error)
	update func(context.Context, string, services.JobPatch) error
	del    func(context.Context, string) error
}

func (s stubJobSvc) List(ctx context.Context, activeOnly bool) ([]domain.Job, error) {
	if s.list != nil {
		return s.list(ctx, activeOnly)
	}
	return nil, nil
}

func (s stubJobSvc) Get(ctx context.Context, id string) (*domain.Job, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Job{ID: id}, nil
}

func (s stubJobSvc) Create(ctx context.Context, in services.JobInput) (*domain.Job, error) {
	if s.create != nil {
		return s.create(ctx, in)
	}
	return &domain.Job{ID: "j1", Title: in.Title}, nil
}

func (s stubJobSvc) Update(ctx context.Context, id string, patch services.JobPatch) error {
	if s.update != nil {
		return s.update(ctx, id, patch)
	}
	return nil
}

func (s stubJobSvc) Delete(ctx context.Context, id string) error {
	if s.del != nil {
		return s.del(ctx, id)
	}
	return nil
}

type stubEnquirySvc struct {
	submit func(context.Context, services.EnquiryInput) (*domain.Enquiry, error)
}

func (s stubEnquirySvc) Submit(ctx context.Context, in services.EnquiryInput) (*domain.Enquiry, error) {
	if s.submit != nil {
		return s.submit(ctx, in)
	}
	return &domain.Enquiry{ID: "e1", Name: in.Name, FormType: domain.FormTypeGeneral}, nil
}

type stubAuthSvc struct {
	login    func(string, string) (string, error)
	logout   func(string)
	verify   func(string) bool
	identity func(string) string
}

func (s stubAuthSvc) Login(u, p string) (string, error) {
	if s.login != nil {
		return s.login(u, p)
	}
	return "tok", nil
}

func (s stubAuthSvc) Logout(tok string) {
	if s.logout != nil {
		s.logout(tok)
	}
}

func (s stubAuthSvc) Verify(tok string) bool {
	if s.verify != nil {
		return s.verify(tok)
	}
	return true
}

func (s stubAuthSvc) Identity(tok string) string {
	if s.identity != nil {
		return s.identity(tok)
	}
	return "admin"
}

type stubUploadStore struct {
	save func(*multipart.FileHeader) (*storage.StoredFile, error)
	path func(string) (string, error)
}

func (s stubUploadStore) Save(fh *multipart.FileHeader) (*storage.StoredFile, error) {
	if s.save != nil {
		return s.save(fh)
	}
	return &storage.StoredFile{Name: "x.png", Kind: storage.KindImage}, nil
}

func (s stubUploadStore) Path(name string) (string, error) {
	if s.path != nil {
		return s.path(name)
	}
	return "", storage.ErrFileNotFound
}

// newStubHandlers builds a Handlers with all-stub dependencies; individual
// tests override the pieces they care about via the opts mutator.
func newStubHandlers(opts func(h *Handlers)) *Handlers {
	h := New(stubProjectSvc{}, stubJobSvc{}, stubEnquirySvc{}, stubAuthSvc{}, stubUploadStore{}, nil, "/api")
	if opts != nil {
		opts(h)
	}
	return h
}

// ---------- ListProjects / GetProject ----------

func TestListProjects_Success_Filter_And_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Real service over sqlite: seed two categories and filter one.
	db := newTestDB(t)
	svc := services.NewProjectService(db, testProjectRepo{})
	for _, p := range []domain.Project{
		{ID: "res00001", Title: "A", Description: "d", Category: "residential"},
		{ID: "com00001", Title: "B", Description: "d", Category: "commercial"},
	} {
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	h := newStubHandlers(func(h *Handlers) { h.projectSvc = svc })

	r := gin.New()
	r.GET("/projects", h.ListProjects)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects?category=residential", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
	}
	var out []domain.Project
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(out) != 1 || out[0].Category != "residential" {
		t.Fatalf("filter mismatch: %#v", out)
	}

	// Service error -> 500 list_failed
	hErr := newStubHandlers(func(h *Handlers) {
		h.projectSvc = stubProjectSvc{
			list: func(context.Context, string) ([]domain.Project, error) { return nil, gorm.ErrInvalidField },
		}
	})
	rErr := gin.New()
	rErr.GET("/projects", hErr.ListProjects)
	w = httptest.NewRecorder()
	rErr.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("list error -> %d", w.Code)
	}
}

func TestGetProject_Found_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	svc := services.NewProjectService(db, testProjectRepo{})
	if err := db.Create(&domain.Project{ID: "ab12cd34", Title: "T", Description: "d", Category: "residential"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := newStubHandlers(func(h *Handlers) { h.projectSvc = svc })

	r := gin.New()
	r.GET("/projects/:project_id", h.GetProject)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/ab12cd34", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get -> %d body=%s", w.Code, w.Body.String())
	}
	var out domain.Project
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.ID != "ab12cd34" || out.Title != "T" {
		t.Fatalf("unexpected project: %#v", out)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/zzzzzzzz", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing -> %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeNotFound {
		t.Fatalf("error code = %q", er.Code)
	}
}

// ---------- CreateProject ----------

func TestCreateProject_BadJSON_Success_Internal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Bad JSON -> 400
	{
		h := newStubHandlers(nil)
		r := gin.New()
		r.POST("/projects", h.CreateProject)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString("{bad")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad json -> %d", w.Code)
		}
	}

	// Missing required field -> 400
	{
		h := newStubHandlers(nil)
		r := gin.New()
		r.POST("/projects", h.CreateProject)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/projects",
			bytes.NewBufferString(`{"title":"No category or description"}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing fields -> %d", w.Code)
		}
	}

	// Success -> 201 with assigned short id
	{
		db := newTestDB(t)
		svc := services.NewProjectService(db, testProjectRepo{})
		h := newStubHandlers(func(h *Handlers) { h.projectSvc = svc })
		r := gin.New()
		r.POST("/projects", h.CreateProject)

		body := `{"title":"Sunrise Towers","description":"Premium 3BHK","category":"residential",
			"features":["Clubhouse","Pool"],"highlights":{"floors":22},"is_featured":true}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
		}
		var out domain.Project
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if len(out.ID) != 8 {
			t.Fatalf("expected 8-char id, got %q", out.ID)
		}
		if !out.IsFeatured || len(out.Features) != 2 {
			t.Fatalf("unexpected project: %#v", out)
		}
	}

	// Internal error -> 500 create_failed
	{
		h := newStubHandlers(func(h *Handlers) {
			h.projectSvc = stubProjectSvc{
				create: func(context.Context, services.ProjectInput) (*domain.Project, error) {
					return nil, gorm.ErrInvalidField
				},
			}
		})
		r := gin.New()
		r.POST("/projects", h.CreateProject)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/projects",
			bytes.NewBufferString(`{"title":"X","description":"d","category":"c"}`)))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("internal -> %d", w.Code)
		}
	}
}

// ---------- UpdateProject ----------

func TestUpdateProject_Empty_Success_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	svc := services.NewProjectService(db, testProjectRepo{})
	seed := domain.Project{ID: "ab12cd34", Title: "Old", Description: "d", Category: "residential", IsFeatured: true}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := newStubHandlers(func(h *Handlers) { h.projectSvc = svc })

	r := gin.New()
	r.PUT("/projects/:project_id", h.UpdateProject)

	// Empty body object -> 400 (nothing to merge)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/projects/ab12cd34", bytes.NewBufferString(`{}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty update -> %d", w.Code)
	}

	// Success: only supplied fields change, explicit false overwrites
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/projects/ab12cd34",
		bytes.NewBufferString(`{"title":"New","is_featured":false}`)))
	if w.Code != http.StatusNoContent {
		t.Fatalf("update -> %d body=%s", w.Code, w.Body.String())
	}
	var got domain.Project
	if err := db.First(&got, "id = ?", "ab12cd34").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Title != "New" || got.IsFeatured || got.Category != "residential" {
		t.Fatalf("merge mismatch: %#v", got)
	}

	// Unknown id -> 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/projects/zzzzzzzz",
		bytes.NewBufferString(`{"title":"X"}`)))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing -> %d", w.Code)
	}
}

// ---------- DeleteProject ----------

func TestDeleteProject_Success_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	svc := services.NewProjectService(db, testProjectRepo{})
	if err := db.Create(&domain.Project{ID: "ab12cd34", Title: "T", Description: "d", Category: "c"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	h := newStubHandlers(func(h *Handlers) { h.projectSvc = svc })

	r := gin.New()
	r.DELETE("/projects/:project_id", h.DeleteProject)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/projects/ab12cd34", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete -> %d", w.Code)
	}

	// Gone now -> 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/projects/ab12cd34", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("repeat delete -> %d", w.Code)
	}
}
