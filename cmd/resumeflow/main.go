// Package main provides the resumeflow command-line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeflow",
	Short: "Generate job-tailored resumes and cover letters",
	Long:  "ResumeFlow turns a job posting and your career history into a schema-validated, job-tailored resume and cover letter, rendered to PDF via LaTeX.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
