package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe_DecodesProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user/me", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"name": "Jane Doe", "email": "jane@example.com",
			"provider": "google", "isPro": false, "scansUsed": 1, "resumeCount": 3,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok" })
	profile, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "google", profile.Provider)
	assert.False(t, profile.IsPro)
	assert.Equal(t, 1, profile.ScansUsed)
	assert.Equal(t, 3, profile.ResumeCount)
}

func TestCreateCheckoutSession_ReturnsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/stripe/create-checkout-session", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://checkout.stripe.com/pay/cs_test_123"})
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok" })
	url, err := c.CreateCheckoutSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", url)
}
