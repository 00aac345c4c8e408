package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var coverLetterCommand = &cobra.Command{
	Use:   "coverletter <resume-id>",
	Short: "Generate a cover letter from an analyzed resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetter,
}

var (
	coverLetterJobDescription string
	coverLetterJobFile        string
	coverLetterOut            string
)

func init() {
	coverLetterCommand.Flags().StringVarP(&coverLetterJobDescription, "job-description", "j", "", "Job description to address the letter to")
	coverLetterCommand.Flags().StringVar(&coverLetterJobFile, "job-file", "", "Path to a file containing the job description")
	coverLetterCommand.Flags().StringVarP(&coverLetterOut, "out", "o", "", "Write the letter to a file instead of stdout")

	rootCmd.AddCommand(coverLetterCommand)
}

func runCoverLetter(cmd *cobra.Command, args []string) error {
	resumeID, err := parseResumeID(args[0])
	if err != nil {
		return err
	}
	jobDescription, err := resolveJobDescription(coverLetterJobDescription, coverLetterJobFile)
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

	letter, err := a.api.CoverLetter(ctx, resumeID, jobDescription)
	if err != nil {
		return a.explain(err)
	}
	a.events.CoverLetterGenerated()

	if coverLetterOut != "" {
		if err := os.WriteFile(coverLetterOut, []byte(letter), 0o644); err != nil {
			return fmt.Errorf("failed to write cover letter: %w", err)
		}
		fmt.Printf("Cover letter written to %s\n", coverLetterOut)
		return nil
	}
	fmt.Println(letter)
	return nil
}
