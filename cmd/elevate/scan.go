package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/elevateai/elevate-client/internal/api"
	"github.com/elevateai/elevate-client/internal/flow"
)

var scanCommand = &cobra.Command{
	Use:   "scan <resume.pdf>",
	Short: "Upload a resume and run an ATS analysis",
	Long: `Uploads a PDF resume to ElevateAI and analyzes it. Pass a job
description to get job-specific keyword matching; without one the analysis
covers general ATS readiness only.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var (
	scanJobDescription string
	scanJobFile        string
)

func init() {
	scanCommand.Flags().StringVarP(&scanJobDescription, "job-description", "j", "", "Job description text to match against")
	scanCommand.Flags().StringVar(&scanJobFile, "job-file", "", "Path to a file containing the job description (mutually exclusive with --job-description)")

	rootCmd.AddCommand(scanCommand)
}

func runScan(cmd *cobra.Command, args []string) error {
	jobDescription, err := resolveJobDescription(scanJobDescription, scanJobFile)
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

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	scan := flow.New(a.api, a.store.IsAuthenticated, a.events, a.log)
	if err := scan.SelectFile(filepath.Base(path), data); err != nil {
		var fileErr *flow.FileError
		if errors.As(err, &fileErr) {
			return fileErr
		}
		return err
	}

	// Upload and analysis present as one operation with one wait message.
	fmt.Printf("Uploading and analyzing %s...\n", filepath.Base(path))
	result, err := scan.Run(ctx, jobDescription)
	if err != nil {
		if api.IsQuotaExceeded(err) {
			a.log.Debug().Msg("scan rejected: free quota exhausted")
		}
		return a.explain(err)
	}

	a.printer.PrintAnalysis(result, a.gate(result.Partial))

	if result.Partial {
		fmt.Println("Add a job description with --job-description for keyword matching and tailored suggestions.")
	}
	fmt.Printf("\nResume ID: %d (use it with preview, export, coverletter, interview)\n", scan.ResumeID())
	return nil
}
