// internal/store/documents.go
//
// Profile and project reads.  Each row's doc column is decoded through
// internal/profile so historical field spellings are folded onto the
// canonical schema before anything leaves this package.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
)

// Profile fetches one tenant's profile document.  ErrNotFound means no
// record exists for the identifier; any other error is a backend fault.
func (s *Store) Profile(ctx context.Context, tenantID string) (*profile.UserProfile, error) {
	const q = `SELECT doc FROM user_profile WHERE username = ? LIMIT 1`

	var doc []byte
	if err := s.db.GetContext(ctx, &doc, q, tenantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: profile %q: %w", tenantID, err)
	}

	var p profile.UserProfile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("store: profile %q: decode: %w", tenantID, err)
	}
	// The row key is authoritative; old documents omit the field.
	p.Username = tenantID
	return &p, nil
}

// Projects fetches every project owned by the tenant.  Zero rows yield
// an empty slice, never an error: a tenant without projects is a valid
// state.
func (s *Store) Projects(ctx context.Context, tenantID string) ([]profile.ProjectSummary, error) {
	const q = `SELECT id, doc FROM project WHERE user_id = ?`

	rows := make([]struct {
		ID  string `db:"id"`
		Doc []byte `db:"doc"`
	}, 0, 8)
	if err := s.db.SelectContext(ctx, &rows, q, tenantID); err != nil {
		return nil, fmt.Errorf("store: projects %q: %w", tenantID, err)
	}

	out := make([]profile.ProjectSummary, 0, len(rows))
	for _, r := range rows {
		var p profile.ProjectSummary
		if err := json.Unmarshal(r.Doc, &p); err != nil {
			return nil, fmt.Errorf("store: project %q: decode: %w", r.ID, err)
		}
		p.ID = r.ID
		p.UserID = tenantID
		out = append(out, p)
	}
	return out, nil
}
