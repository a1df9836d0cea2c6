// internal/api/users.go
//
// GET /api/users/{tenantID}.  Returns the canonical profile document
// for one tenant.  Distinguishes "no such tenant" (404) from a store
// fault (500); the two must never blur, as the web layer renders a
// friendly page for the former and retries the latter.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jatinPrakash2720/portfolio-hub/internal/store"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")
	if tenantID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	cacheKey := "users:" + tenantID
	if h.Cache != nil {
		if body, ok := h.Cache.Get(r.Context(), cacheKey); ok {
			writeRaw(w, http.StatusOK, body)
			return
		}
	}

	prof, err := h.Store.Profile(r.Context(), tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		zap.S().Errorw("api: profile fetch failed",
			"tenant", tenantID,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user data")
		return
	}

	body, err := json.Marshal(prof)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch user data")
		return
	}
	if h.Cache != nil {
		h.Cache.Set(r.Context(), cacheKey, body)
	}
	writeRaw(w, http.StatusOK, body)
}
