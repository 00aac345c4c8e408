package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enhanceCommand = &cobra.Command{
	Use:   "enhance <bullet point>",
	Short: "Rewrite a resume bullet point with AI",
	Long: `Sends a single bullet point to ElevateAI for an AI rewrite. The
enhanced text is printed so you can paste it into your resume, or apply it
to a live preview with 'elevate preview --edit'.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnhance,
}

var enhanceTargetJob string

func init() {
	enhanceCommand.Flags().StringVarP(&enhanceTargetJob, "target-job", "t", "", "Job title to tailor the rewrite toward")

	rootCmd.AddCommand(enhanceCommand)
}

func runEnhance(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	enhanced, err := a.api.Enhance(ctx, args[0], enhanceTargetJob)
	if err != nil {
		return a.explain(err)
	}
	a.events.AIRewriteUsed()

	fmt.Println(enhanced)
	return nil
}
