// Package identity exchanges an opaque session id for a user profile with the
// external identity provider.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// SessionDataPath is the provider endpoint that resolves a session id.
const SessionDataPath = "/auth/v1/env/oauth/session-data"

// ErrRejected is returned when the provider answers with a non-200 status.
var ErrRejected = errors.New("identity provider rejected session")

// Profile is the identity returned by the provider.
type Profile struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// Exchanger resolves a session id to a Profile.
type Exchanger interface {
	Exchange(ctx context.Context, sessionID string) (*Profile, error)
}

// Client talks to the identity provider over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new identity provider client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Exchange resolves sessionID. Any non-200 answer yields an error wrapping
// ErrRejected; transport and decoding failures are returned as is.
func (c *Client) Exchange(ctx context.Context, sessionID string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+SessionDataPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching session data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRejected, resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding session data: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("decoding session data: missing email")
	}
	return &profile, nil
}
