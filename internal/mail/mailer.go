// internal/mail/mailer.go
//
// Outbound email through the Resend API.
//
// Context
// -------
// Two messages leave the system per contact submission: a confirmation
// to the visitor and a notification to the portfolio owner.  Resend
// accepts a send and reports delivery progress as a last-event string on
// the email resource; Status folds those strings into the three states
// callers care about.  A bounced visitor confirmation is how we learn
// the visitor mistyped their address.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
)

// DeliveryState classifies a delivery's last event.
type DeliveryState int

const (
	// DeliveryPending – queued, scheduled, or delayed; not a failure.
	DeliveryPending DeliveryState = iota
	// DeliveryConfirmed – accepted or delivered downstream.
	DeliveryConfirmed
	// DeliveryFailed – bounced, failed, or marked as spam.
	DeliveryFailed
)

// Mailer sends portfolio emails.
type Mailer struct {
	client *resend.Client
	from   string // e.g. "Jatin Prakash's Portfolio <noreply@jatinbuilds.com>"
}

// New builds a Mailer.  from must be a verified Resend sender.
func New(apiKey, from string) *Mailer {
	return &Mailer{client: resend.NewClient(apiKey), from: from}
}

// SendVisitorConfirmation thanks the visitor for reaching out and echoes
// their message.  Returns the Resend delivery id.
func (m *Mailer) SendVisitorConfirmation(ctx context.Context, to, name, message string) (string, error) {
	html, err := render(visitorTemplate, map[string]string{
		"Name":    name,
		"Message": message,
	})
	if err != nil {
		return "", err
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Thank you for reaching out!",
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("mail: visitor confirmation: %w", err)
	}
	if sent.Id == "" {
		return "", fmt.Errorf("mail: visitor confirmation: no delivery id returned")
	}
	return sent.Id, nil
}

// SendOwnerNotification tells the portfolio owner a submission arrived.
func (m *Mailer) SendOwnerNotification(ctx context.Context, ownerEmail, name, visitorEmail, message, timestamp string) (string, error) {
	html, err := render(ownerTemplate, map[string]string{
		"Name":      name,
		"Email":     visitorEmail,
		"Message":   message,
		"Timestamp": timestamp,
	})
	if err != nil {
		return "", err
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{ownerEmail},
		Subject: fmt.Sprintf("New contact form submission from %s", name),
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("mail: owner notification: %w", err)
	}
	if sent.Id == "" {
		return "", fmt.Errorf("mail: owner notification: no delivery id returned")
	}
	return sent.Id, nil
}

// Status fetches the delivery's last event and classifies it.  An
// unreadable status is reported as pending: the send itself succeeded,
// so the benefit of the doubt goes to the email.
func (m *Mailer) Status(ctx context.Context, deliveryID string) DeliveryState {
	email, err := m.client.Emails.GetWithContext(ctx, deliveryID)
	if err != nil {
		return DeliveryPending
	}
	return ClassifyEvent(email.LastEvent)
}

// ClassifyEvent maps a Resend last-event string onto a DeliveryState.
func ClassifyEvent(event string) DeliveryState {
	switch event {
	case "bounced", "failed", "complained":
		return DeliveryFailed
	case "delivered", "sent", "opened", "clicked":
		return DeliveryConfirmed
	default:
		// queued, scheduled, delivery_delayed, or unknown.
		return DeliveryPending
	}
}

func render(t *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mail: render template: %w", err)
	}
	return buf.String(), nil
}
