package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/elevateai/elevate-client/internal/api"
)

var profileCommand = &cobra.Command{
	Use:   "profile",
	Short: "Show your account, plan, and remaining free scans",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCommand)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	var (
		profile *api.Profile
		history []api.HistoryItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = a.api.Me(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = a.api.History(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return a.explain(err)
	}

	gate := a.gate(false)
	gate.Pro = profile.IsPro
	gate.ScansUsed = profile.ScansUsed

	a.printer.PrintProfile(profile, gate)
	a.printer.PrintHistory(history)
	return nil
}
