package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elevateai/elevate-client/internal/analysis"
	"github.com/elevateai/elevate-client/internal/entitlement"
	"github.com/elevateai/elevate-client/internal/preview"
)

var previewCommand = &cobra.Command{
	Use:   "preview <resume-id>",
	Short: "Render a live preview of an analyzed resume",
	Long: `Fetches the formatted preview for a resume and template. Each
--edit flag names a bullet point to rewrite with AI; the enhanced text is
patched into the preview in place of the original.

By default the preview's text content is printed. Use --out to save the
HTML document, or --screenshot to render it to a PNG with headless Chrome.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

var (
	previewTemplate   string
	previewFont       string
	previewEdits      []string
	previewTargetJob  string
	previewOut        string
	previewScreenshot string
)

func init() {
	previewCommand.Flags().StringVarP(&previewTemplate, "template", "t", entitlement.DefaultTemplate, "Resume template: basic, modern, or executive (modern and executive require Pro)")
	previewCommand.Flags().StringVarP(&previewFont, "font", "f", preview.DefaultFont, "Font family for the rendered resume")
	previewCommand.Flags().StringArrayVarP(&previewEdits, "edit", "e", nil, "Bullet point to rewrite with AI and patch into the preview (repeatable)")
	previewCommand.Flags().StringVar(&previewTargetJob, "target-job", "", "Job title to tailor --edit rewrites toward")
	previewCommand.Flags().StringVarP(&previewOut, "out", "o", "", "Write the preview HTML to a file")
	previewCommand.Flags().StringVar(&previewScreenshot, "screenshot", "", "Render the preview to a PNG file (requires Chrome)")

	rootCmd.AddCommand(previewCommand)
}

func runPreview(cmd *cobra.Command, args []string) error {
	resumeID, err := parseResumeID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	// Template access depends on the plan, so the profile is refreshed
	// before the guard runs.
	a.store.RefreshProfile(ctx)
	gate := a.gate(false)

	edits := analysis.NewEditSet()
	sync := preview.NewSynchronizer(a.api, edits, resumeID, a.log)
	sync.SetFont(previewFont)
	if upgrade := sync.SelectTemplate(gate, previewTemplate); upgrade != nil {
		a.events.UpgradeClicked(upgrade.Surface)
		fmt.Printf("The %q template requires Pro; rendering with %q instead.\n", previewTemplate, sync.Selection().Template)
		fmt.Printf("Run `elevate upgrade --source %s` to unlock all templates.\n\n", upgrade.Surface)
	}

	for _, original := range previewEdits {
		enhanced, err := a.api.Enhance(ctx, original, previewTargetJob)
		if err != nil {
			return a.explain(err)
		}
		a.events.AIRewriteUsed()
		edits.Apply(original, enhanced)
	}

	if err := sync.Refresh(ctx); err != nil {
		return a.explain(err)
	}
	doc, ok := sync.Document()
	if !ok {
		fmt.Println(doc)
		return nil
	}

	if previewOut != "" {
		if err := os.WriteFile(previewOut, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		fmt.Printf("Preview written to %s\n", previewOut)
	}
	if previewScreenshot != "" {
		shot, err := preview.RenderScreenshot(ctx, doc, preview.DefaultRenderTimeout)
		if err != nil {
			return fmt.Errorf("failed to render screenshot: %w", err)
		}
		if err := os.WriteFile(previewScreenshot, shot, 0o644); err != nil {
			return fmt.Errorf("failed to write screenshot: %w", err)
		}
		fmt.Printf("Screenshot written to %s\n", previewScreenshot)
	}
	if previewOut == "" && previewScreenshot == "" {
		text, err := preview.ExtractText(doc)
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	return nil
}
