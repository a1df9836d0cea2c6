// internal/store/contact.go
//
// Contact submission persistence.  The one write path in the store; the
// contact handler treats a failure here as non-fatal once emails are out.
package store

import (
	"context"
	"fmt"

	"github.com/jatinPrakash2720/portfolio-hub/internal/contact"
)

// SaveContact inserts one contact_response row.
func (s *Store) SaveContact(ctx context.Context, sub contact.Submission) error {
	const q = `
	    INSERT INTO contact_response
	           (id, name, email, message, user_id, date_of_response, time_of_response)
	    VALUES (?, ?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, q,
		sub.ID, sub.Name, sub.Email, sub.Message, sub.TenantID, sub.Date, sub.Time); err != nil {
		return fmt.Errorf("store: save contact: %w", err)
	}
	return nil
}

// ContactsByTenant lists submissions for one portfolio owner, newest
// first.  Used by the admin view, not the HTTP hot path.
func (s *Store) ContactsByTenant(ctx context.Context, tenantID string) ([]contact.Submission, error) {
	const q = `
	    SELECT id, name, email, message, user_id, date_of_response, time_of_response
	    FROM   contact_response
	    WHERE  user_id = ?
	    ORDER  BY date_of_response DESC, time_of_response DESC`

	rows := make([]struct {
		ID       string `db:"id"`
		Name     string `db:"name"`
		Email    string `db:"email"`
		Message  string `db:"message"`
		UserID   string `db:"user_id"`
		Date     string `db:"date_of_response"`
		Time     string `db:"time_of_response"`
	}, 0, 16)
	if err := s.db.SelectContext(ctx, &rows, q, tenantID); err != nil {
		return nil, fmt.Errorf("store: contacts %q: %w", tenantID, err)
	}

	out := make([]contact.Submission, 0, len(rows))
	for _, r := range rows {
		out = append(out, contact.Submission{
			ID: r.ID, Name: r.Name, Email: r.Email, Message: r.Message,
			TenantID: r.UserID, Date: r.Date, Time: r.Time,
		})
	}
	return out, nil
}
