// internal/web/web.go
//
// Server-rendered portfolio pages.
//
// Context
// -------
// Three thin page shells per tenant:
//
//	GET /          – intro (headline, bio, tech stack, social links)
//	GET /projects  – project gallery
//	GET /contact   – contact form shell (posts to /api/contact)
//
// The tenant is resolved from the Host header through the tenant cache,
// so every page on jatin.portfolio.live renders Jatin's data with zero
// per-page lookups after the first visit.  An unknown subdomain gets a
// friendly "no portfolio here" page, never a raw error; a store fault
// gets a retryable 500 page.
//
// Each request also touches the visitor's session: the session state
// machine mirrors the tenant assignment and kicks off its one-time
// profile prefetch in the background, so the per-route loading flags
// the pages read are live.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jatinPrakash2720/portfolio-hub/internal/session"
	"github.com/jatinPrakash2720/portfolio-hub/internal/tenant"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Handler serves the tenant-scoped pages.
type Handler struct {
	Cache    *tenant.Cache
	Sessions *session.Manager

	tmpl *template.Template
}

// New parses the embedded templates and returns a ready Handler.
func New(cache *tenant.Cache, sessions *session.Manager) *Handler {
	return &Handler{
		Cache:    cache,
		Sessions: sessions,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Routes returns the page router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.page(session.RouteIntro, "intro.html"))
	r.Get("/projects", h.page(session.RouteProjects, "projects.html"))
	r.Get("/contact", h.page(session.RouteContact, "contact.html"))
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))
	return r
}

// pageData is the template context shared by all three shells.
type pageData struct {
	DisplayName string
	Tenant      *tenant.Tenant
	Route       session.Route
	Loading     bool
}

// page builds the handler for one route.  All three pages share the
// resolve-render-fallback skeleton; only the template differs.
func (h *Handler) page(route session.Route, tmplName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := h.touchSession(w, r, route)

		ten, err := h.Cache.GetByHost(r.Host)
		switch {
		case errors.Is(err, tenant.ErrNotFound):
			h.render(w, http.StatusNotFound, "notfound.html", pageData{Route: route})
			return
		case err != nil:
			zap.S().Errorw("web: tenant resolve failed", "host", r.Host, "err", err)
			h.render(w, http.StatusInternalServerError, "error.html", pageData{Route: route})
			return
		}

		data := pageData{
			DisplayName: ten.DisplayName(),
			Tenant:      ten,
			Route:       route,
		}
		if st != nil {
			data.Loading = st.RouteLoading(route)
		}
		h.render(w, http.StatusOK, tmplName, data)
	}
}

// touchSession mints or refreshes the visitor session and starts the
// one-time profile prefetch off the request path.  The route that
// triggered the prefetch carries the loading flag until the fetch
// lands, so its page renders the in-flight affordance meanwhile.
func (h *Handler) touchSession(w http.ResponseWriter, r *http.Request, route session.Route) *session.State {
	if h.Sessions == nil {
		return nil
	}
	st := h.Sessions.Session(w, r)
	if snap := st.Snapshot(); snap.Phase == session.PhaseTenantAssigned {
		st.SetRouteLoading(route, true)
		go func() {
			// Detached: the prefetch must outlive this request.
			st.Prefetch(context.Background())
			st.SetRouteLoading(route, false)
		}()
	}
	return st
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		zap.S().Errorw("web: template render failed", "template", name, "err", err)
	}
}
