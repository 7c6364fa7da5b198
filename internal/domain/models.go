// Package domain defines the persistence models for projects, jobs, and
// enquiries. These types are mapped with GORM and form the core data layer
// of the real-estate site backend.
//
// Records are addressed by an application-assigned short identifier (see
// NewContentID) rather than any storage-native identity; API responses never
// expose anything but these application ids.
package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Enquiry form types accepted on submission.
const (
	FormTypeGeneral    = "general"
	FormTypeProject    = "project"
	FormTypeInvestment = "investment"
)

// EnquiryStatusNew is the status stamped on every freshly captured lead.
// Further status transitions are handled by back-office tooling, not here.
const EnquiryStatusNew = "new"

// Project represents a real-estate development shown on the public site.
//
// Fields:
//   - ID: application-assigned short identifier (8 chars), primary key.
//   - Category / SubCategory: coarse and fine classification
//     (e.g. "residential" / "Apartments"); Category is indexed for the
//     public list filter.
//   - Features: ordered list of selling points, stored as a JSON column.
//   - Highlights: free-form key/value facts (area, floors, units, ...),
//     stored as a JSON column.
//   - IsFeatured: surfaces the project on the landing page.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Project struct {
	ID          string                      `json:"id"           gorm:"type:varchar(16);primaryKey"`
	Title       string                      `json:"title"        gorm:"type:varchar(255);not null"`
	Description string                      `json:"description"  gorm:"type:text;not null"`
	Category    string                      `json:"category"     gorm:"type:varchar(64);not null;index:idx_project_category"`
	SubCategory string                      `json:"sub_category" gorm:"type:varchar(64)"`
	Location    string                      `json:"location"     gorm:"type:varchar(255)"`
	ImageURL    string                      `json:"image_url"    gorm:"type:text"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	Highlights  datatypes.JSONMap           `json:"highlights"`
	IsFeatured  bool                        `json:"is_featured"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// TableName returns the database table name for Project.
func (Project) TableName() string { return "projects" }

// Job represents an open position listed on the careers page.
//
// Fields:
//   - ID: application-assigned short identifier (8 chars), primary key.
//   - Type: employment type ("Full-time", "Contract", ...).
//   - Requirements: ordered list of candidate requirements (JSON column).
//   - IsActive: whether the position is currently open; indexed because the
//     public listing filters on it by default.
type Job struct {
	ID           string                      `json:"id"          gorm:"type:varchar(16);primaryKey"`
	Title        string                      `json:"title"       gorm:"type:varchar(255);not null"`
	Department   string                      `json:"department"  gorm:"type:varchar(64);not null"`
	Location     string                      `json:"location"    gorm:"type:varchar(255)"`
	Type         string                      `json:"type"        gorm:"type:varchar(32)"`
	Description  string                      `json:"description" gorm:"type:text;not null"`
	Requirements datatypes.JSONSlice[string] `json:"requirements"`
	IsActive     bool                        `json:"is_active"   gorm:"index:idx_job_active"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// TableName returns the database table name for Job.
func (Job) TableName() string { return "jobs" }

// Enquiry is a lead captured from a public contact form. It is written once
// on submission and never modified by this service; the notification email
// sent afterwards is a lossy side channel and has no bearing on the record.
//
// Fields:
//   - ID: application-assigned short identifier (8 chars), primary key.
//   - Name / Phone: required contact details.
//   - Email, Project, Message: optional form fields; Project holds the short
//     id of the project the lead asked about, when any.
//   - FormType: which form produced the lead (general, project, investment).
//   - Status: always "new" at creation time.
type Enquiry struct {
	ID        string    `json:"id"         gorm:"type:varchar(16);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(128);not null"`
	Phone     string    `json:"phone"      gorm:"type:varchar(32);not null"`
	Email     string    `json:"email,omitempty"   gorm:"type:varchar(255)"`
	Project   string    `json:"project,omitempty" gorm:"type:varchar(64)"`
	Message   string    `json:"message,omitempty" gorm:"type:text"`
	FormType  string    `json:"form_type"  gorm:"type:varchar(16);not null;default:'general';check:form_type IN ('general','project','investment')"`
	Status    string    `json:"status"     gorm:"type:varchar(16);not null;default:'new'"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Enquiry.
func (Enquiry) TableName() string { return "enquiries" }

// ValidFormType reports whether s is one of the accepted enquiry form types.
func ValidFormType(s string) bool {
	switch s {
	case FormTypeGeneral, FormTypeProject, FormTypeInvestment:
		return true
	}
	return false
}

// NewContentID returns a fresh 8-character identifier for content records.
// Ids are the leading segment of a UUIDv4, which is short enough for pretty
// URLs while keeping the collision chance negligible at this catalogue size.
func NewContentID() string {
	return uuid.NewString()[:8]
}

// NewUploadID returns a fresh 12-character identifier for stored media files.
func NewUploadID() string {
	s := uuid.NewString()
	// Skip the hyphen at offset 8 so twelve id characters survive.
	return s[:8] + s[9:13]
}
