// Package services defines the business logic for content management,
// enquiry capture, and admin authentication. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrProjectNotFound indicates that no project matches the requested
	// short identifier.
	ErrProjectNotFound = errors.New("project not found")

	// ErrJobNotFound indicates that no job matches the requested short
	// identifier.
	ErrJobNotFound = errors.New("job not found")

	// ErrEmptyUpdate is returned when a partial update carries no
	// recognized fields. An empty merge is rejected, never treated as a
	// silent no-op.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrInvalidCredentials is returned by Login when the supplied
	// username or password does not match the configured admin account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidEnquiry is returned when an enquiry submission is missing
	// required contact details or names an unknown form type.
	ErrInvalidEnquiry = errors.New("enquiry requires name and phone")
)
