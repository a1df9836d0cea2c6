// internal/session/fetcher.go
//
// HTTP ProfileFetcher.
//
// The session machine fetches through the same public profile endpoint a
// browser would hit, so the session path and the client path exercise one
// contract.  404 maps to ErrProfileNotFound; every other non-200 and any
// transport error is a retryable fault.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
)

// HTTPFetcher calls GET {base}/api/users/{tenantID}.
type HTTPFetcher struct {
	Base   string // e.g. "http://127.0.0.1:8080"
	Client *http.Client
}

// NewHTTPFetcher builds a fetcher with a caller-side timeout.
func NewHTTPFetcher(base string) *HTTPFetcher {
	return &HTTPFetcher{
		Base:   base,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// FetchProfile implements ProfileFetcher.
func (f *HTTPFetcher) FetchProfile(ctx context.Context, tenantID string) (*profile.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		f.Base+"/api/users/"+tenantID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session: fetch profile: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, tenantID)
	default:
		return nil, fmt.Errorf("session: fetch profile: unexpected status %s", resp.Status)
	}

	var p profile.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("session: fetch profile: decode: %w", err)
	}
	return &p, nil
}
