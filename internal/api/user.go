package api

import (
	"context"
	"net/http"
)

// Profile is the read-only user snapshot served by the backend. It is never
// mutated locally; an up-to-date view (e.g. after an upgrade) is always a
// fresh fetch.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Picture     string `json:"picture"`
	Provider    string `json:"provider"`
	IsPro       bool   `json:"isPro"`
	ScansUsed   int    `json:"scansUsed"`
	ResumeCount int64  `json:"resumeCount"`
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/me", nil, &profile, "Failed to fetch profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateCheckoutSession asks the payment collaborator for a hosted checkout
// page. The caller performs a full navigation to the returned URL; no
// purchase logic lives client-side.
func (c *Client) CreateCheckoutSession(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/stripe/create-checkout-session", nil, &resp, "Failed to start checkout"); err != nil {
		return "", err
	}
	return resp.URL, nil
}
