// Package session is the single source of truth for who the current user is
// and whether they are signed in.
//
// The store is constructed explicitly and injected where needed; there is no
// package-level state, so tests build isolated instances. The bearer token
// lives both in memory and in a durable file, and the two copies are only
// allowed to differ mid login/logout transition.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/elevateai/elevate-client/internal/api"
)

// State is the two-phase authentication state. A present token authenticates
// requests immediately (optimistic); the profile arrives asynchronously, and
// consumers that need profile fields must check for StateReady rather than
// assuming they are loaded.
type State int

const (
	// StateAnonymous means no token is held.
	StateAnonymous State = iota
	// StateTokenOnly means a token is held but the profile is not loaded.
	StateTokenOnly
	// StateReady means both token and profile are available.
	StateReady
)

// ProfileFetcher fetches the current user's profile. Implemented by
// *api.Client.
type ProfileFetcher interface {
	Me(ctx context.Context) (*api.Profile, error)
}

// Store holds the session token and cached profile.
type Store struct {
	mu      sync.Mutex
	path    string
	token   string
	profile *api.Profile
	fetch   ProfileFetcher
	log     zerolog.Logger
}

// New creates a store persisting the token at path. fetch may be nil for a
// store that never loads profiles (tests).
func New(path string, fetch ProfileFetcher, log zerolog.Logger) *Store {
	return &Store{path: path, fetch: fetch, log: log}
}

// Restore loads a previously persisted token and, if one exists, fetches the
// profile. A profile-fetch failure is deliberate leniency: the token stays in
// place for retry on the next call, and the profile remains unloaded.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read token file: %w", err)
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.loadProfile(ctx)
	return nil
}

// Login stores a freshly issued token in memory and durable storage, then
// fetches the profile. Authentication is effective immediately; the profile
// arrives asynchronously to the caller's view.
func (s *Store) Login(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("cannot log in with an empty token")
	}
	s.mu.Lock()
	if err := s.persistLocked(token); err != nil {
		s.mu.Unlock()
		return err
	}
	s.token = token
	s.profile = nil
	s.mu.Unlock()

	s.loadProfile(ctx)
	return nil
}

// Logout clears the token and profile from memory and durable storage. It is
// idempotent and does not call the server; logging out twice concurrently is
// safe.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Expire implements the shared 401 contract: the token is removed exactly as
// in Logout. Registered as the API client's unauthorized hook so every
// authenticated call site reacts uniformly.
func (s *Store) Expire() {
	s.Logout()
}

// Token returns the current bearer token, or "" when signed out. Registered
// as the API client's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the cached profile, or nil while it is not loaded.
func (s *Store) User() *api.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// State returns the two-phase authentication state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.token == "":
		return StateAnonymous
	case s.profile == nil:
		return StateTokenOnly
	default:
		return StateReady
	}
}

// IsAuthenticated reports whether a token is held. True as soon as Login
// stores the token, before the profile resolves.
func (s *Store) IsAuthenticated() bool {
	return s.State() != StateAnonymous
}

// RefreshProfile refetches the profile from the server. Used after actions
// that change server-side truth, e.g. a completed upgrade.
func (s *Store) RefreshProfile(ctx context.Context) {
	s.loadProfile(ctx)
}

// loadProfile fetches and caches the profile. Failures are swallowed: the
// profile stays nil and the token stays valid until a protected call rejects
// it. A 401 here already cleared the token through the shared hook.
func (s *Store) loadProfile(ctx context.Context) {
	if s.fetch == nil {
		return
	}
	profile, err := s.fetch.Me(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("profile fetch failed, keeping token for retry")
		return
	}
	s.mu.Lock()
	if s.token != "" {
		s.profile = profile
	}
	s.mu.Unlock()
}

// persistLocked writes the token file. Caller holds the lock.
func (s *Store) persistLocked(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// clearLocked removes token and profile from memory and storage. Caller
// holds the lock. Removing an already-absent file is not an error.
func (s *Store) clearLocked() {
	s.token = ""
	s.profile = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Err(err).Msg("failed to remove token file")
	}
}
