// internal/store/store_test.go
//
// Unit-tests for the store client using sqlmock.
//
// The cases that matter are the three return shapes: a decoded document,
// ErrNotFound for an absent row, and a wrapped fault for everything else.
// Legacy field spellings in stored documents must come back canonical.

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "mysql")), mock
}

const profileQuery = `SELECT doc FROM user_profile WHERE username = ? LIMIT 1`

func TestProfile_Found(t *testing.T) {
	s, mock := newMockStore(t)

	doc := `{
		"fullName": "Himanshu", "email": "him@example.com",
		"headline": "Backend developer", "bio": "Builds things.",
		"profilePictureUrl": "https://img.example.com/him.png",
		"techStack": ["go", "mysql"],
		"socialLinks": {"githubProfile": "https://github.com/him"},
		"githubRepos": []
	}`
	mock.ExpectQuery(regexp.QuoteMeta(profileQuery)).
		WithArgs("himanshu").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(doc)))

	p, err := s.Profile(context.Background(), "himanshu")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if p.Username != "himanshu" {
		t.Fatalf("username not taken from row key: %q", p.Username)
	}
	if p.SocialLinks.GitHub != "https://github.com/him" {
		t.Fatalf("legacy socialLinks key not normalised: %+v", p.SocialLinks)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestProfile_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(profileQuery)).
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	_, err := s.Profile(context.Background(), "unknown")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProfile_FaultIsNotNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(profileQuery)).
		WithArgs("himanshu").
		WillReturnError(errors.New("connection refused"))

	_, err := s.Profile(context.Background(), "himanshu")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("fault misclassified: %v", err)
	}
}

func TestProjects_EmptySliceNotError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, doc FROM project WHERE user_id = ?`)).
		WithArgs("himanshu").
		WillReturnRows(sqlmock.NewRows([]string{"id", "doc"}))

	got, err := s.Projects(context.Background(), "himanshu")
	if err != nil {
		t.Fatalf("Projects error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty slice, got %#v", got)
	}
}

func TestProjects_NormalisesMisspelledSourceURL(t *testing.T) {
	s, mock := newMockStore(t)

	doc := `{"title": "Chat App", "liveUrl": "https://chat.example.com",
	         "soureCodeUrl": "https://github.com/him/chat", "technologies": ["go"]}`
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, doc FROM project WHERE user_id = ?`)).
		WithArgs("himanshu").
		WillReturnRows(sqlmock.NewRows([]string{"id", "doc"}).AddRow("p1", []byte(doc)))

	got, err := s.Projects(context.Background(), "himanshu")
	if err != nil {
		t.Fatalf("Projects error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d", len(got))
	}
	p := got[0]
	if p.ID != "p1" || p.UserID != "himanshu" {
		t.Fatalf("row keys not applied: %+v", p)
	}
	if p.SourceCodeURL != "https://github.com/him/chat" {
		t.Fatalf("misspelled source URL not folded: %q", p.SourceCodeURL)
	}
}

func TestSaveContact(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contact_response`)).
		WithArgs("id-1", "Visitor", "v@example.com", "Hello, nice portfolio!",
			"jatin", "2026-09-01", "10:30:00").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.SaveContact(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("SaveContact error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
