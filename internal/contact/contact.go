// internal/contact/contact.go
//
// Contact form submissions.
//
// A submission records who wrote, what they wrote, and which portfolio
// owner it was addressed to.  Date and time are stored as split strings
// (YYYY-MM-DD, HH:MM:SS) to match the existing contact_response rows.
package contact

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one contact form entry.  Validation bounds mirror the
// public form: short names and one-liner messages are rejected before any
// email is attempted.
type Submission struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required,min=10,max=2000"`
	TenantID string `json:"userId" validate:"required,min=1,max=20"`

	Date string `json:"dateOfResponse"`
	Time string `json:"timeOfResponse"`
}

// Stamp assigns a fresh ID and the current date/time split fields.
func (s *Submission) Stamp(now time.Time) {
	s.ID = uuid.NewString()
	s.Date = now.Format("2006-01-02")
	s.Time = now.Format("15:04:05")
}
