// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/config"
	"github.com/advaithaa/realty-backend/internal/domain"
	"github.com/advaithaa/realty-backend/internal/http/handlers"
	"github.com/advaithaa/realty-backend/internal/http/middleware"
	"github.com/advaithaa/realty-backend/internal/repo"
	"github.com/advaithaa/realty-backend/internal/services"
	"github.com/advaithaa/realty-backend/internal/session"
	"github.com/advaithaa/realty-backend/internal/storage"
)

// projectRepoShim adapts the repository free functions to the
// services.ProjectRepo interface expected by the ProjectService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type projectRepoShim struct{}

// CreateProject proxies repo.CreateProject.
func (projectRepoShim) CreateProject(ctx context.Context, db *gorm.DB, p *domain.Project) error {
	return repo.CreateProject(ctx, db, p)
}

// ListProjects proxies repo.ListProjects.
func (projectRepoShim) ListProjects(ctx context.Context, db *gorm.DB, category string) ([]domain.Project, error) {
	return repo.ListProjects(ctx, db, category)
}

// GetProject proxies repo.GetProject.
func (projectRepoShim) GetProject(ctx context.Context, db *gorm.DB, id string) (*domain.Project, error) {
	return repo.GetProject(ctx, db, id)
}

// UpdateProjectFields proxies repo.UpdateProjectFields.
func (projectRepoShim) UpdateProjectFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateProjectFields(ctx, db, id, fields)
}

// DeleteProject proxies repo.DeleteProject.
func (projectRepoShim) DeleteProject(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteProject(ctx, db, id)
}

// jobRepoShim adapts the repository free functions to services.JobRepo.
type jobRepoShim struct{}

// CreateJob proxies repo.CreateJob.
func (jobRepoShim) CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) error {
	return repo.CreateJob(ctx, db, j)
}

// ListJobs proxies repo.ListJobs.
func (jobRepoShim) ListJobs(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Job, error) {
	return repo.ListJobs(ctx, db, activeOnly)
}

// GetJob proxies repo.GetJob.
func (jobRepoShim) GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error) {
	return repo.GetJob(ctx, db, id)
}

// UpdateJobFields proxies repo.UpdateJobFields.
func (jobRepoShim) UpdateJobFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateJobFields(ctx, db, id, fields)
}

// DeleteJob proxies repo.DeleteJob.
func (jobRepoShim) DeleteJob(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteJob(ctx, db, id)
}

// enquiryRepoShim adapts the repository free functions to services.EnquiryRepo.
type enquiryRepoShim struct{}

// CreateEnquiry proxies repo.CreateEnquiry.
func (enquiryRepoShim) CreateEnquiry(ctx context.Context, db *gorm.DB, e *domain.Enquiry) error {
	return repo.CreateEnquiry(ctx, db, e)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the public API under the configured base path (default /api).
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs (session tokens masked)
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS and Security headers
//
// Route surface:
//   - Public reads: projects, jobs, uploads
//   - Public writes: enquiries, seed-data
//   - Admin: login/logout/verify open; all other mutations behind RequireSession
func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Manager, notifier services.Notifier, uploads *storage.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB for JSON; multipart uploads get a
	//    separate, larger cap on their own route)
	jsonBody := limitBody(1 << 20)
	r.Use(func(c *gin.Context) {
		if c.ContentType() == "multipart/form-data" {
			c.Next()
			return
		}
		jsonBody(c)
	})

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db/session/notifier
	projectSvc := services.NewProjectService(db, projectRepoShim{})
	jobSvc := services.NewJobService(db, jobRepoShim{})
	enquirySvc := services.NewEnquiryService(db, enquiryRepoShim{}, notifier)
	authSvc := services.NewAuthService(sessions, cfg.Admin)

	h := handlers.New(
		projectSvc,
		jobSvc,
		enquirySvc,
		authSvc,
		uploads,
		func(ctx context.Context) (bool, error) { return repo.Seed(ctx, db) },
		cfg.APIBasePath,
	)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Service banner
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Advaithaa Properties API"})
		})

		// Catalogue reads
		api.GET("/projects", h.ListProjects)
		api.GET("/projects/:project_id", h.GetProject)
		api.GET("/jobs", h.ListJobs)
		api.GET("/jobs/:job_id", h.GetJob)

		// Lead capture and demo content
		api.POST("/enquiries", h.SubmitEnquiry)
		api.POST("/seed-data", h.SeedData)

		// Stored media
		api.GET("/uploads/:filename", h.ServeUpload)

		// Admin session endpoints (reachable without a session)
		api.POST("/admin/login", h.Login)
		api.POST("/admin/logout", h.Logout)
		api.GET("/admin/verify", h.Verify)

		// Session-gated mutations
		admin := api.Group("", middleware.RequireSession(sessions.Validate))
		{
			admin.POST("/projects", h.CreateProject)
			admin.PUT("/projects/:project_id", h.UpdateProject)
			admin.DELETE("/projects/:project_id", h.DeleteProject)

			admin.POST("/jobs", h.CreateJob)
			admin.PUT("/jobs/:job_id", h.UpdateJob)
			admin.DELETE("/jobs/:job_id", h.DeleteJob)

			admin.POST("/upload", limitBody(cfg.Upload.MaxBytes+(1<<20)), h.UploadMedia)
		}
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
