// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Enquiry
// model.
//
// Enquiries are append-only in this service: the submission flow inserts the
// lead and later status handling lives elsewhere. A failed insert must reach
// the caller untouched because persistence failure is the one caller-visible
// error of the submission flow.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/advaithaa/realty-backend/internal/domain"
)

// CreateEnquiry inserts the captured lead. The caller assigns the short id,
// status and all form fields; CreatedAt is filled by GORM.
func CreateEnquiry(ctx context.Context, db *gorm.DB, e *domain.Enquiry) error {
	return db.WithContext(ctx).Create(e).Error
}

// ListEnquiries returns up to ListLimit leads ordered newest first. Exposed
// for back-office use; the public surface never reads enquiries.
func ListEnquiries(ctx context.Context, db *gorm.DB) ([]domain.Enquiry, error) {
	out := []domain.Enquiry{}
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(ListLimit).
		Find(&out).Error
	return out, err
}
