// internal/api/api.go
//
// JSON API surface.
//
// Context
// -------
// Four endpoints, mounted under /api by cmd/web:
//
//	GET  /api/users/{tenantID}     – canonical UserProfile
//	GET  /api/projects/{tenantID}  – {"projects": [...]}, public fields only
//	POST /api/contact              – contact pipeline (verify, email, persist)
//	POST /api/validate-email       – deliverability pre-check for the form
//
// The two reads are side-effect-free and cached by tenant identifier.
// Collaborators arrive as narrow interfaces so handler tests can fake
// the store, the mailer, and the checker without wiring MySQL or Resend.
package api

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jatinPrakash2720/portfolio-hub/internal/apicache"
	"github.com/jatinPrakash2720/portfolio-hub/internal/contact"
	"github.com/jatinPrakash2720/portfolio-hub/internal/mail"
	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
)

// Storage is the slice of the store client the API needs.
type Storage interface {
	Profile(ctx context.Context, tenantID string) (*profile.UserProfile, error)
	Projects(ctx context.Context, tenantID string) ([]profile.ProjectSummary, error)
	SaveContact(ctx context.Context, sub contact.Submission) error
}

// Checker reports whether an address looks deliverable.  Implementations
// must fail open.
type Checker interface {
	Check(ctx context.Context, address string) bool
}

// Mailer sends the two contact emails and reports delivery state.
type Mailer interface {
	SendVisitorConfirmation(ctx context.Context, to, name, message string) (string, error)
	SendOwnerNotification(ctx context.Context, ownerEmail, name, visitorEmail, message, timestamp string) (string, error)
	Status(ctx context.Context, deliveryID string) mail.DeliveryState
}

// Handler bundles the API's collaborators.
type Handler struct {
	Store   Storage
	Cache   *apicache.Cache
	Checker Checker

	// Mailer may be nil when no email provider is configured; the
	// contact pipeline then persists submissions without sending.
	Mailer Mailer

	// OwnerEmail receives notifications when the tenant profile carries
	// no address of its own.
	OwnerEmail string

	// StatusDelay is how long to wait before polling the visitor
	// confirmation's delivery state.  Tests set it to zero.
	StatusDelay time.Duration

	validate *validator.Validate
}

// NewHandler applies defaults.
func NewHandler(store Storage, cache *apicache.Cache, checker Checker, mailer Mailer, ownerEmail string) *Handler {
	return &Handler{
		Store:       store,
		Cache:       cache,
		Checker:     checker,
		Mailer:      mailer,
		OwnerEmail:  ownerEmail,
		StatusDelay: 2 * time.Second,
		validate:    validator.New(),
	}
}

// Routes returns the /api router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/users/{tenantID}", h.getUser)
	r.Get("/projects/{tenantID}", h.getProjects)
	r.Post("/contact", h.postContact)
	r.Post("/validate-email", h.postValidateEmail)
	return r
}
