package main

import (
	"github.com/spf13/cobra"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List your previously analyzed resumes",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCommand)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	items, err := a.api.History(ctx)
	if err != nil {
		return a.explain(err)
	}
	a.printer.PrintHistory(items)
	return nil
}
