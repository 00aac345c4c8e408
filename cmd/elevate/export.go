package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elevateai/elevate-client/internal/api"
	"github.com/elevateai/elevate-client/internal/entitlement"
	"github.com/elevateai/elevate-client/internal/preview"
)

var exportCommand = &cobra.Command{
	Use:   "export <resume-id>",
	Short: "Export an analyzed resume as a polished PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportTemplate string
	exportFont     string
	exportText     string
	exportOut      string
)

func init() {
	exportCommand.Flags().StringVarP(&exportTemplate, "template", "t", entitlement.DefaultTemplate, "Resume template: basic, modern, or executive (modern and executive require Pro)")
	exportCommand.Flags().StringVarP(&exportFont, "font", "f", preview.DefaultFont, "Font family for the exported resume")
	exportCommand.Flags().StringVar(&exportText, "text-file", "", "Path to edited resume text to export instead of the stored content")
	exportCommand.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (defaults to the server-suggested filename)")

	rootCmd.AddCommand(exportCommand)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	a.store.RefreshProfile(ctx)
	gate := a.gate(false)
	template, upgrade := gate.SelectTemplate(entitlement.DefaultTemplate, exportTemplate)
	if upgrade != nil {
		a.events.UpgradeClicked(upgrade.Surface)
		fmt.Printf("The %q template requires Pro; exporting with %q instead.\n", exportTemplate, template)
		fmt.Printf("Run `elevate upgrade --source %s` to unlock all templates.\n\n", upgrade.Surface)
	}

	opts := api.ExportOptions{Template: template, Font: exportFont}
	if exportText != "" {
		data, err := os.ReadFile(exportText)
		if err != nil {
			return fmt.Errorf("failed to read resume text: %w", err)
		}
		opts.Text = string(data)
	}

	result, err := a.api.ExportPDF(ctx, resumeID, opts)
	if err != nil {
		return a.explain(err)
	}
	a.events.PDFExported(template, exportFont)

	out := exportOut
	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, result.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Printf("Exported %d bytes to %s\n", len(result.Data), out)
	return nil
}
