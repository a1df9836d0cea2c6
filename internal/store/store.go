// internal/store/store.go
//
// Tenant data store client.
//
// Context
// -------
// Profiles and projects live in MySQL as JSON documents keyed by tenant
// identifier, so the client behaves like the document store it fronts:
// `get(collection, key)` with absence as a valid result.  The two failure
// shapes matter to callers and must never blur:
//
//   - ErrNotFound       – no record for the identifier.  Expected, not a
//     fault, never logged as an error.  Callers render an empty state.
//   - any other error   – connectivity or backend fault.  Callers render
//     a retry affordance.
//
// Schema reference (2025-08-12)
//
//	CREATE TABLE user_profile (
//	    username    VARCHAR(20)  PRIMARY KEY,
//	    doc         JSON         NOT NULL,
//	    created_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
//	CREATE TABLE project (
//	    id          CHAR(36)     PRIMARY KEY,
//	    user_id     VARCHAR(20)  NOT NULL,
//	    doc         JSON         NOT NULL,
//	    created_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    INDEX       (user_id)
//	);
//
//	CREATE TABLE contact_response (
//	    id               CHAR(36)      PRIMARY KEY,
//	    name             VARCHAR(100)  NOT NULL,
//	    email            VARCHAR(256)  NOT NULL,
//	    message          TEXT          NOT NULL,
//	    user_id          VARCHAR(20)   NOT NULL,
//	    date_of_response CHAR(10)      NOT NULL,
//	    time_of_response CHAR(8)       NOT NULL,
//	    created_at       TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • Documents decode through internal/profile, so legacy field spellings
//   are normalised here and never escape the boundary.
// • All reads are idempotent and safe to retry.
package store

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no record exists for an identifier.
var ErrNotFound = errors.New("store: not found")

// Store executes read and write operations against the portfolio tables.
type Store struct {
	db *sqlx.DB
}

// New wraps an already-open pool.  Use Handle() for the process-wide
// single-flight initialised instance.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying pool.
func (s *Store) Close() error {
	return s.db.Close()
}
