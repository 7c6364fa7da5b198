package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/advaithaa/realty-backend/internal/domain"
)

func sampleEnquiry() domain.Enquiry {
	return domain.Enquiry{
		ID:        "ab12cd34",
		Name:      "Asha",
		Phone:     "9999999999",
		Email:     "asha@example.com",
		Project:   "alkapuri",
		Message:   "Interested in a 3BHK",
		FormType:  domain.FormTypeProject,
		Status:    domain.EnquiryStatusNew,
		CreatedAt: time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderEnquiry_SubjectIncludesName(t *testing.T) {
	subject, _ := RenderEnquiry(sampleEnquiry())
	if !strings.Contains(subject, "Asha") {
		t.Fatalf("subject %q missing lead name", subject)
	}
}

func TestRenderEnquiry_BodyFields(t *testing.T) {
	_, body := RenderEnquiry(sampleEnquiry())
	for _, want := range []string{
		"Asha", "9999999999", "asha@example.com", "alkapuri",
		"Interested in a 3BHK", "15 Mar 2025", "ab12cd34", "project",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderEnquiry_OptionalFieldsOmitted(t *testing.T) {
	e := sampleEnquiry()
	e.Email, e.Project, e.Message = "", "", ""
	_, body := RenderEnquiry(e)
	for _, absent := range []string{"Email", "Project", "Message"} {
		if strings.Contains(body, absent) {
			t.Fatalf("body should omit %s row when empty:\n%s", absent, body)
		}
	}
}

func TestRenderEnquiry_EscapesHTML(t *testing.T) {
	e := sampleEnquiry()
	e.Message = `<script>alert("x")</script>`
	_, body := RenderEnquiry(e)
	if strings.Contains(body, "<script>") {
		t.Fatalf("unescaped markup in body:\n%s", body)
	}
}

func TestRenderEnquiry_Deterministic(t *testing.T) {
	e := sampleEnquiry()
	s1, b1 := RenderEnquiry(e)
	s2, b2 := RenderEnquiry(e)
	if s1 != s2 || b1 != b2 {
		t.Fatal("render is not deterministic for identical input")
	}
}
