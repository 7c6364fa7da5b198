// Media upload HTTP handlers.
//
// This file exposes media storage endpoints:
//   - POST /upload              (admin: store an image or video)
//   - GET  /uploads/{filename}  (public: serve a stored file)
//   - POST /seed-data           (populate demo content once)
//
// Upload responses return the public URL under which the stored file is
// served, ready to be pasted into a project's image_url field.
package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaithaa/realty-backend/internal/http/middleware"
	"github.com/advaithaa/realty-backend/internal/storage"
)

// UploadStore defines the media persistence operations consumed by HTTP
// handlers. Implementations must generate file names themselves; nothing
// user-controlled becomes a path component.
type UploadStore interface {
	// Save persists one uploaded file and returns its descriptor.
	Save(fh *multipart.FileHeader) (*storage.StoredFile, error)
	// Path resolves a stored file name to its on-disk path.
	Path(name string) (string, error)
}

// UploadResponse describes a stored media file.
type UploadResponse struct {
	Success  bool   `json:"success" example:"true"`
	URL      string `json:"url" example:"/api/uploads/ab12cd34ef56.jpg"`
	Filename string `json:"filename" example:"ab12cd34ef56.jpg"`
	Kind     string `json:"kind" example:"image"`
}

// UploadMedia godoc
// @ID          uploadMedia
// @Summary     Upload a media file
// @Description Stores an image or video under a generated name and returns its public URL. Admin session required.
// @Tags        Media
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       token  query     string  false  "Admin session token"
// @Param       file   formData  file    true   "Image or video file"
//
// @Success     200  {object}  handlers.UploadResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing file or unsupported media type"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /upload [post]
func (h *Handlers) UploadMedia(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "file field is required")
		return
	}

	stored, err := h.uploads.Save(fh)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMedia) {
			fail(c, http.StatusBadRequest, ErrCodeUnsupportedMedia, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, "could not store file")
		return
	}

	middleware.LoggerFrom(c).Info().
		Str("filename", stored.Name).
		Str("kind", stored.Kind).
		Int64("size", stored.Size).
		Msg("media stored")

	ok(c, http.StatusOK, UploadResponse{
		Success:  true,
		URL:      h.basePath + "/uploads/" + stored.Name,
		Filename: stored.Name,
		Kind:     stored.Kind,
	})
}

// ServeUpload godoc
// @ID          serveUpload
// @Summary     Serve a stored media file
// @Description Streams a previously uploaded file by its generated name.
// @Tags        Media
// @Produce     octet-stream
//
// @Param       filename  path  string  true  "Stored file name"  example(ab12cd34ef56.jpg)
//
// @Success     200  {file}    file
// @Failure     404  {object}  handlers.ErrorResponse  "File not found"
// @Router      /uploads/{filename} [get]
func (h *Handlers) ServeUpload(c *gin.Context) {
	p, err := h.uploads.Path(c.Param("filename"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "file not found")
		return
	}
	c.File(p)
}

// SeedData godoc
// @ID          seedData
// @Summary     Seed demo content
// @Description Populates the catalogue with demo projects and jobs. A no-op when any project already exists.
// @Tags        Media
// @Produce     json
//
// @Success     200  {object}  map[string]any
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /seed-data [post]
func (h *Handlers) SeedData(c *gin.Context) {
	if h.seedFn == nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "seeding not available")
		return
	}
	seeded, err := h.seedFn(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not seed data")
		return
	}
	if !seeded {
		ok(c, http.StatusOK, gin.H{"success": true, "message": "Data already exists"})
		return
	}
	ok(c, http.StatusOK, gin.H{"success": true, "message": "Sample data created"})
}
