// Package notify formats and delivers the enquiry notification email.
//
// Rendering is a pure function of the enquiry record; delivery is an SMTP
// side effect that runs detached from the HTTP request (see dispatcher.go).
package notify

import (
	"html/template"
	"strings"

	"github.com/advaithaa/realty-backend/internal/domain"
)

var enquiryTmpl = template.Must(template.New("enquiry").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>New {{.FormType}} enquiry</h2>
  <table cellpadding="6">
    <tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
    <tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
{{- if .Email}}
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
{{- end}}
{{- if .Project}}
    <tr><td><b>Project</b></td><td>{{.Project}}</td></tr>
{{- end}}
{{- if .Message}}
    <tr><td><b>Message</b></td><td>{{.Message}}</td></tr>
{{- end}}
    <tr><td><b>Submitted</b></td><td>{{.CreatedAt.Format "02 Jan 2006 15:04 MST"}}</td></tr>
    <tr><td><b>Reference</b></td><td>{{.ID}}</td></tr>
  </table>
</body>
</html>`))

// RenderEnquiry produces the notification subject line and HTML body for a
// captured lead. It is deterministic given the enquiry and performs no I/O;
// all user-supplied values are HTML-escaped by the template engine.
func RenderEnquiry(e domain.Enquiry) (subject, body string) {
	subject = "New enquiry from " + e.Name
	var sb strings.Builder
	// The template cannot fail on this fixed shape.
	_ = enquiryTmpl.Execute(&sb, e)
	return subject, sb.String()
}
