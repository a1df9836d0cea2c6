// internal/api/contact.go
//
// POST /api/contact.
//
// Pipeline
// --------
//  1. Decode and validate the submission.
//  2. Fail-open deliverability check on the visitor address.
//  3. Send the visitor confirmation, then poll its delivery state once;
//     a hard bounce aborts the pipeline so the visitor sees an error
//     instead of silence.
//  4. Notify the portfolio owner.
//  5. Persist the submission.  Storage failures after both emails went
//     out are logged but do not fail the request.
//
// Crawler traffic (per the parsed User-Agent) is acknowledged without
// sending email or writing rows.  With no Mailer configured, steps 3
// and 4 are skipped and persistence becomes mandatory.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jatinPrakash2720/portfolio-hub/internal/contact"
	"github.com/jatinPrakash2720/portfolio-hub/internal/mail"
	"github.com/jatinPrakash2720/portfolio-hub/internal/metrics"
	"github.com/jatinPrakash2720/portfolio-hub/internal/requestinfo"
)

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) postContact(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(sub); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if info := requestinfo.FromContext(r.Context()); info != nil && info.UA.IsBot {
		metrics.ContactSubmissionsTotal.WithLabelValues("bot").Inc()
		zap.S().Infow("api: contact submission from crawler dropped",
			"tenant", sub.TenantID,
			"ua", info.UA.Raw,
		)
		writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: "Message received"})
		return
	}

	if !h.Checker.Check(r.Context(), sub.Email) {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "Please enter a valid, deliverable email address")
		return
	}

	sub.Stamp(time.Now())

	// Outbound email disabled: persist the submission and acknowledge.
	// With no confirmation sent, a persistence failure is the whole
	// pipeline failing and must surface.
	if h.Mailer == nil {
		if err := h.Store.SaveContact(r.Context(), sub); err != nil {
			metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
			zap.S().Errorw("api: contact persist failed",
				"tenant", sub.TenantID,
				"id", sub.ID,
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, "Failed to save your message")
			return
		}
		metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
		writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: "Message received"})
		return
	}

	deliveryID, err := h.Mailer.SendVisitorConfirmation(r.Context(), sub.Email, sub.Name, sub.Message)
	if err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		zap.S().Errorw("api: visitor confirmation failed",
			"tenant", sub.TenantID,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Failed to send confirmation email")
		return
	}

	// Resend reports bounces asynchronously; one short poll catches the
	// common typo-domain case without holding the request long.
	if h.StatusDelay > 0 {
		time.Sleep(h.StatusDelay)
	}
	if h.Mailer.Status(r.Context(), deliveryID) == mail.DeliveryFailed {
		metrics.ContactSubmissionsTotal.WithLabelValues("bounced").Inc()
		writeError(w, http.StatusBadRequest, "Your email address appears to be invalid.  Please check it and try again.")
		return
	}

	ownerEmail := h.OwnerEmail
	if prof, perr := h.Store.Profile(r.Context(), sub.TenantID); perr == nil && prof.Email != "" {
		ownerEmail = prof.Email
	}
	if ownerEmail != "" {
		if _, err := h.Mailer.SendOwnerNotification(r.Context(), ownerEmail, sub.Name, sub.Email, sub.Message, sub.Date+" "+sub.Time); err != nil {
			// The visitor already got their confirmation; log and move on.
			zap.S().Errorw("api: owner notification failed",
				"tenant", sub.TenantID,
				"error", err,
			)
		}
	}

	if err := h.Store.SaveContact(r.Context(), sub); err != nil {
		zap.S().Errorw("api: contact persist failed",
			"tenant", sub.TenantID,
			"id", sub.ID,
			"error", err,
		)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	writeJSON(w, http.StatusOK, contactResponse{
		Success: true,
		Message: "Message sent successfully.  Check your inbox for a confirmation.",
	})
}

// validationMessage flattens the first field error into a human-readable
// string.  The form surfaces one problem at a time.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Field() {
		case "Name":
			return "Name must be between 2 and 100 characters"
		case "Email":
			return "A valid email address is required"
		case "Message":
			return "Message must be between 10 and 2000 characters"
		case "TenantID":
			return "User ID is required"
		}
	}
	return "Invalid submission"
}
