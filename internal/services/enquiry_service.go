// Package services – EnquiryService
//
// This file implements the enquiry submission flow. The sequencing matters:
// the lead is durably persisted first, and only a successful write schedules
// the background notification. A persistence failure aborts the flow and is
// the caller's problem; a notification failure is invisible to the caller
// and lives entirely inside the dispatcher's error boundary.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// EnquiryRepo defines the repository contract required by EnquiryService.
type EnquiryRepo interface {
	CreateEnquiry(ctx context.Context, db *gorm.DB, e *domain.Enquiry) error
}

// Notifier schedules a best-effort, out-of-band notification for a
// persisted lead. Implementations must not block the caller and must
// swallow their own failures.
type Notifier interface {
	Dispatch(e domain.Enquiry)
}

// EnquiryInput carries a public enquiry submission. FormType defaults to
// "general" when empty.
type EnquiryInput struct {
	Name     string
	Phone    string
	Email    string
	Project  string
	Message  string
	FormType string
}

// EnquiryService captures leads from the public forms.
type EnquiryService struct {
	DB       *gorm.DB
	Repo     EnquiryRepo
	Notifier Notifier
}

// NewEnquiryService constructs an EnquiryService.
func NewEnquiryService(db *gorm.DB, r EnquiryRepo, n Notifier) *EnquiryService {
	return &EnquiryService{DB: db, Repo: r, Notifier: n}
}

// Submit validates, persists, and then schedules notification for a lead.
//
// Failure domains are deliberately separate:
//   - invalid input returns ErrInvalidEnquiry, nothing is written;
//   - a store write failure is returned to the caller, nothing is scheduled;
//   - once the write succeeds the submission has succeeded, whatever the
//     notification later does.
func (s *EnquiryService) Submit(ctx context.Context, in EnquiryInput) (*domain.Enquiry, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return nil, ErrInvalidEnquiry
	}
	formType := in.FormType
	if formType == "" {
		formType = domain.FormTypeGeneral
	}
	if !domain.ValidFormType(formType) {
		return nil, ErrInvalidEnquiry
	}

	e := &domain.Enquiry{
		ID:       domain.NewContentID(),
		Name:     name,
		Phone:    phone,
		Email:    strings.TrimSpace(in.Email),
		Project:  strings.TrimSpace(in.Project),
		Message:  strings.TrimSpace(in.Message),
		FormType: formType,
		Status:   domain.EnquiryStatusNew,
	}
	if err := s.Repo.CreateEnquiry(ctx, s.DB, e); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.Dispatch(*e)
	}
	return e, nil
}
