package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jatinPrakash2720/portfolio-hub/internal/contact"
)

func testSubmission() contact.Submission {
	return contact.Submission{
		ID:       "id-1",
		Name:     "Visitor",
		Email:    "v@example.com",
		Message:  "Hello, nice portfolio!",
		TenantID: "jatin",
		Date:     "2026-09-01",
		Time:     "10:30:00",
	}
}

func TestContactsByTenant(t *testing.T) {
	s, mock := newMockStore(t)

	cols := []string{"id", "name", "email", "message", "user_id",
		"date_of_response", "time_of_response"}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, message, user_id, date_of_response, time_of_response`)).
		WithArgs("jatin").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("id-2", "Second", "s@example.com", "Later message here", "jatin", "2026-09-01", "11:00:00").
			AddRow("id-1", "Visitor", "v@example.com", "Hello, nice portfolio!", "jatin", "2026-09-01", "10:30:00"))

	got, err := s.ContactsByTenant(context.Background(), "jatin")
	if err != nil {
		t.Fatalf("ContactsByTenant error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "id-2" || got[1].TenantID != "jatin" {
		t.Errorf("rows mismatched: %+v", got)
	}
}
