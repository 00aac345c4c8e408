// Package auth handles the OAuth sign-in round trip.
//
// The backend drives the actual provider exchange; the client only opens the
// provider authorization URL and waits on a loopback listener for the
// redirect carrying the issued token. The token query parameter is consumed
// exactly once and never echoed back, the loopback analog of stripping the
// token from the visible URL.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// Providers the backend supports.
const (
	ProviderGoogle   = "google"
	ProviderLinkedIn = "linkedin"
)

// CallbackPath is the loopback route the backend redirects to.
const CallbackPath = "/auth/callback"

// ErrNoToken is the terminal failure for one sign-in attempt: the callback
// arrived without a token. The user is informed and sent home; a fresh
// attempt starts over.
var ErrNoToken = errors.New("authentication failed: no token received from the server")

// AuthorizationURL builds the backend's provider authorization endpoint with
// the loopback redirect attached.
func AuthorizationURL(apiBaseURL, provider, redirectURI string) string {
	return fmt.Sprintf("%s/oauth2/authorization/%s?redirect_uri=%s", apiBaseURL, provider, redirectURI)
}

// Listener waits for one OAuth callback on the loopback interface.
type Listener struct {
	ln     net.Listener
	server *http.Server

	once   sync.Once
	tokens chan string
	fails  chan error
}

// NewListener binds the loopback listener. Port 0 picks a free port;
// RedirectURI reports the resulting address for the authorization URL.
func NewListener(port int) (*Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind callback listener: %w", err)
	}
	l := &Listener{
		ln:     ln,
		tokens: make(chan string, 1),
		fails:  make(chan error, 1),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+CallbackPath, l.handleCallback)
	l.server = &http.Server{Handler: mux}
	return l, nil
}

// RedirectURI returns the loopback callback URL to register with the
// backend redirect.
func (l *Listener) RedirectURI() string {
	return fmt.Sprintf("http://%s%s", l.ln.Addr().String(), CallbackPath)
}

// Wait serves until the first callback arrives or ctx expires, returning the
// issued token. The listener is single-use.
func (l *Listener) Wait(ctx context.Context) (string, error) {
	go func() { _ = l.server.Serve(l.ln) }()
	defer func() {
		// Graceful shutdown so the browser still receives the result page.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = l.server.Shutdown(shutdownCtx)
	}()

	select {
	case token := <-l.tokens:
		return token, nil
	case err := <-l.fails:
		return "", err
	case <-ctx.Done():
		return "", fmt.Errorf("timed out waiting for sign-in: %w", ctx.Err())
	}
}

// handleCallback consumes the token parameter once. Later requests get a
// plain completion page and change nothing.
func (l *Listener) handleCallback(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	l.once.Do(func() {
		if token == "" {
			l.fails <- ErrNoToken
			return
		}
		l.tokens <- token
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if token == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `<html><body><h2>Login failed</h2><p>No token was received from the server. You can close this window and return to the terminal.</p></body></html>`)
		return
	}
	_, _ = fmt.Fprint(w, `<html><body><h2>Signed in</h2><p>You can close this window and return to the terminal.</p></body></html>`)
}
