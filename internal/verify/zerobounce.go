// internal/verify/zerobounce.go
//
// Email-deliverability checking through the ZeroBounce validate API.
//
// Context
// -------
// Before the contact handler spends an email send on a visitor address,
// it asks ZeroBounce whether the address is deliverable.  The check is
// advisory only and MUST fail open: a missing API key, a timeout, or any
// API fault treats the address as deliverable rather than blocking a
// legitimate visitor.  `valid` and `catch-all` statuses count as
// deliverable; catch-all domains accept everything, so certainty is
// impossible there anyway.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultEndpoint = "https://api.zerobounce.net/v2/validate"

// Checker calls the ZeroBounce validate endpoint.
type Checker struct {
	APIKey   string
	Endpoint string // overridable for tests
	Client   *http.Client
}

// New builds a Checker with a caller-side timeout.  An empty key is
// permitted; Check then always fails open.
func New(apiKey string) *Checker {
	return &Checker{
		APIKey:   apiKey,
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: 4 * time.Second},
	}
}

type validateResponse struct {
	Address string `json:"address"`
	Status  string `json:"status"`
}

// Check reports whether address looks deliverable.  All failure modes
// return true (fail open); only a definitive negative verdict from the
// API returns false.
func (c *Checker) Check(ctx context.Context, address string) bool {
	if c.APIKey == "" {
		zap.S().Warnw("deliverability check skipped, no API key configured")
		return true
	}

	q := url.Values{}
	q.Set("api_key", c.APIKey)
	q.Set("email", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return true
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		zap.S().Warnw("deliverability check failed open", "err", err)
		return true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.S().Warnw("deliverability check failed open",
			"err", fmt.Sprintf("unexpected status %s", resp.Status))
		return true
	}

	var body validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		zap.S().Warnw("deliverability check failed open", "err", err)
		return true
	}

	return body.Status == "valid" || body.Status == "catch-all"
}
