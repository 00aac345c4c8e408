// Package main provides the ElevateAI command-line client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "elevate",
	Short: "ElevateAI resume optimization client",
	Long:  "ElevateAI uploads your resume for ATS analysis, rewrites bullet points with AI, generates cover letters and interview questions, and exports polished PDFs. All processing happens on the ElevateAI backend; this client drives the workflow.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
