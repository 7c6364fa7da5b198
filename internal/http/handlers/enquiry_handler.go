// Enquiry HTTP handlers.
//
// This file exposes the public lead-capture endpoint:
//   - POST /enquiries
//
// The endpoint reports success as soon as the lead is durably stored; the
// notification email is scheduled out-of-band by the service layer and its
// outcome never changes the HTTP result.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaithaa/realty-backend/internal/domain"
	"github.com/advaithaa/realty-backend/internal/http/middleware"
	"github.com/advaithaa/realty-backend/internal/services"
)

// EnquiryService defines the lead-capture operation consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type EnquiryService interface {
	// Submit validates, persists, and schedules notification for a lead.
	Submit(ctx context.Context, in services.EnquiryInput) (*domain.Enquiry, error)
}

// SubmitEnquiryRequest is the JSON payload for submitting an enquiry.
type SubmitEnquiryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=128" example:"Priya Sharma"`
	Phone    string `json:"phone" binding:"required,min=5,max=32" example:"+91 98765 43210"`
	Email    string `json:"email" binding:"omitempty,email" example:"priya@example.com"`
	Project  string `json:"project" example:"ab12cd34"`
	Message  string `json:"message" binding:"max=4000"`
	FormType string `json:"form_type" binding:"omitempty,oneof=general project investment" example:"project"`
}

// SubmitEnquiryResponse acknowledges a stored lead.
type SubmitEnquiryResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id" example:"ab12cd34"`
	Message string `json:"message" example:"Enquiry submitted successfully"`
}

// SubmitEnquiry godoc
// @ID          submitEnquiry
// @Summary     Submit an enquiry
// @Description Stores a lead from a public contact form and schedules a best-effort email notification.
// @Tags        Enquiries
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubmitEnquiryRequest  true  "Enquiry payload"
//
// @Success     200  {object}  handlers.SubmitEnquiryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /enquiries [post]
func (h *Handlers) SubmitEnquiry(c *gin.Context) {
	var req SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and phone are required")
		return
	}

	e, err := h.enquirySvc.Submit(c.Request.Context(), services.EnquiryInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Project:  req.Project,
		Message:  req.Message,
		FormType: req.FormType,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidEnquiry) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and phone are required")
			return
		}
		// The lead was not stored; this must be visible to the caller.
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not store enquiry")
		return
	}

	middleware.CountEnquiry(e.FormType)
	middleware.LoggerFrom(c).Info().
		Str("enquiry_id", e.ID).
		Str("form_type", e.FormType).
		Msg("enquiry stored")

	ok(c, http.StatusOK, SubmitEnquiryResponse{
		Success: true,
		ID:      e.ID,
		Message: "Enquiry submitted successfully",
	})
}
