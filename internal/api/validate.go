// internal/api/validate.go
//
// POST /api/validate-email.  The contact form calls this on blur so the
// visitor learns about a dead address before typing a message.  The
// verdict is advisory; /api/contact re-checks on submit.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type validateRequest struct {
	Email string `json:"email"`
}

type validateResponse struct {
	Success bool   `json:"success"`
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

func (h *Handler) postValidateEmail(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	resp := validateResponse{Success: true}
	if h.Checker.Check(r.Context(), req.Email) {
		resp.IsValid = true
		resp.Message = "Email address looks deliverable"
	} else {
		resp.Message = "Email address appears undeliverable"
	}
	writeJSON(w, http.StatusOK, resp)
}
