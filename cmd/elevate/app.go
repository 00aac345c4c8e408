package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/elevateai/elevate-client/internal/analytics"
	"github.com/elevateai/elevate-client/internal/api"
	"github.com/elevateai/elevate-client/internal/config"
	"github.com/elevateai/elevate-client/internal/entitlement"
	"github.com/elevateai/elevate-client/internal/observability"
	"github.com/elevateai/elevate-client/internal/session"
)

// app wires the client components for one command invocation. Everything is
// constructed explicitly here and injected downward; no package holds
// mutable state of its own.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	api     *api.Client
	store   *session.Store
	events  *analytics.Client
	printer *observability.Printer
}

// newApp loads configuration, builds the component graph, and restores any
// persisted session.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	// The client and the session store reference each other: the client pulls
	// its bearer token from the store, and the store fetches profiles through
	// the client. The closures below break the construction cycle.
	var store *session.Store
	opts := []api.Option{
		api.WithLogger(log),
		api.WithUnauthorizedHook(func() {
			if store != nil {
				store.Expire()
			}
		}),
	}
	if cfg.Verbose {
		opts = append(opts, api.WithDebugLogging())
	}
	client := api.New(cfg.APIBaseURL, func() string {
		if store == nil {
			return ""
		}
		return store.Token()
	}, opts...)
	store = session.New(cfg.TokenFile, client, log)

	events := analytics.New(cfg.GAMeasurementID, cfg.GAAPISecret,
		filepath.Join(cfg.StateDir(), "analytics_id"), log)

	if err := store.Restore(ctx); err != nil {
		log.Debug().Err(err).Msg("session restore failed")
	}

	return &app{
		cfg:     cfg,
		log:     log,
		api:     client,
		store:   store,
		events:  events,
		printer: observability.NewPrinter(os.Stdout),
	}, nil
}

// requireAuth fails fast when no session is held.
func (a *app) requireAuth() error {
	if !a.store.IsAuthenticated() {
		return fmt.Errorf("you are not signed in; run `elevate login` first")
	}
	return nil
}

// gate builds the entitlement gate from the freshest profile available. With
// no profile loaded yet the zero gate applies, which is the free tier.
func (a *app) gate(partial bool) entitlement.Gate {
	g := entitlement.Gate{Partial: partial}
	if user := a.store.User(); user != nil {
		g.Pro = user.IsPro
		g.ScansUsed = user.ScansUsed
	}
	return g
}

// parseResumeID parses the positional resume identifier argument.
func parseResumeID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid resume id %q: expected a positive number (see `elevate history`)", arg)
	}
	return id, nil
}

// resolveJobDescription merges the inline and file-based job description
// flags, which are mutually exclusive.
func resolveJobDescription(inline, file string) (string, error) {
	if inline != "" && file != "" {
		return "", fmt.Errorf("--job-description and --job-file are mutually exclusive")
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}
	return inline, nil
}

// explain maps shared failure classes onto the one obvious recovery action.
func (a *app) explain(err error) error {
	switch {
	case api.IsUnauthorized(err):
		return fmt.Errorf("your session has expired; run `elevate login` to sign in again")
	case api.IsQuotaExceeded(err):
		return fmt.Errorf("you have used all your free scans; run `elevate upgrade --source quota` to go Pro")
	default:
		return err
	}
}
