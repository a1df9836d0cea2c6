// internal/api/projects.go
//
// GET /api/projects/{tenantID}.  The project list is always wrapped in
// a named field so an empty portfolio is still a well-formed object,
// and only the public summary fields are emitted.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
)

type projectList struct {
	Projects []profile.ProjectSummary `json:"projects"`
}

func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")
	if tenantID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	cacheKey := "projects:" + tenantID
	if h.Cache != nil {
		if body, ok := h.Cache.Get(r.Context(), cacheKey); ok {
			writeRaw(w, http.StatusOK, body)
			return
		}
	}

	projects, err := h.Store.Projects(r.Context(), tenantID)
	if err != nil {
		zap.S().Errorw("api: project fetch failed",
			"tenant", tenantID,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	if projects == nil {
		projects = []profile.ProjectSummary{}
	}

	body, err := json.Marshal(projectList{Projects: projects})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	if h.Cache != nil {
		h.Cache.Set(r.Context(), cacheKey, body)
	}
	writeRaw(w, http.StatusOK, body)
}
