package main

import (
	"github.com/spf13/cobra"
)

var interviewCommand = &cobra.Command{
	Use:   "interview <resume-id>",
	Short: "Generate interview questions from an analyzed resume",
	Long: `Generates likely interview questions with answering tips, grouped
by category (behavioural, technical, career). Provide a job description to
focus the questions on a specific role.`,
	Args: cobra.ExactArgs(1),
	RunE: runInterview,
}

var (
	interviewJobDescription string
	interviewJobFile        string
)

func init() {
	interviewCommand.Flags().StringVarP(&interviewJobDescription, "job-description", "j", "", "Job description to focus the questions on")
	interviewCommand.Flags().StringVar(&interviewJobFile, "job-file", "", "Path to a file containing the job description")

	rootCmd.AddCommand(interviewCommand)
}

func runInterview(cmd *cobra.Command, args []string) error {
	resumeID, err := parseResumeID(args[0])
	if err != nil {
		return err
	}
	jobDescription, err := resolveJobDescription(interviewJobDescription, interviewJobFile)
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

	questions, err := a.api.InterviewQuestions(ctx, resumeID, jobDescription)
	if err != nil {
		return a.explain(err)
	}
	a.printer.PrintQuestions(questions)
	return nil
}
