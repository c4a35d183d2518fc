package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resumeflow/resumeflow/internal/ingestion"
	"github.com/resumeflow/resumeflow/internal/logger"
	"github.com/resumeflow/resumeflow/internal/pipeline"
)

var jobCommand = &cobra.Command{
	Use:   "job",
	Short: "Extract structured job details from a posting",
	Long:  "Fetch or read a job posting, clean it, and extract the structured job details JSON without generating any documents.",
	RunE:  runJobCmd,
}

var (
	jobFile       string
	jobURL        string
	jobOut        string
	jobProvider   string
	jobModel      string
	jobAPIKey     string
	jobUseBrowser bool
	jobVerbose    bool
)

func init() {
	jobCommand.Flags().StringVarP(&jobFile, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	jobCommand.Flags().StringVar(&jobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	jobCommand.Flags().StringVarP(&jobOut, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	jobCommand.Flags().StringVar(&jobProvider, "provider", "gemini", "Generation backend: gemini, openai, or ollama")
	jobCommand.Flags().StringVarP(&jobModel, "model", "m", "", "Model name override")
	jobCommand.Flags().StringVar(&jobAPIKey, "api-key", "", "Backend API key (defaults to GEMINI_API_KEY or OPENAI_API_KEY env var)")
	jobCommand.Flags().BoolVar(&jobUseBrowser, "use-browser", false, "Use headless browser for JavaScript-heavy sites (requires Chrome)")
	jobCommand.Flags().BoolVarP(&jobVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(jobCommand)
}

func runJobCmd(_ *cobra.Command, _ []string) error {
	if (jobFile == "") == (jobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url must be provided")
	}

	ctx := context.Background()

	var jobText string
	var err error
	if jobURL != "" {
		log, logErr := logger.New(false, jobVerbose)
		if logErr != nil {
			return fmt.Errorf("failed to build logger: %w", logErr)
		}
		defer func() { _ = log.Sync() }()
		jobText, _, err = ingestion.JobTextFromURL(ctx, jobURL, ingestion.JobOptions{
			UseBrowser: jobUseBrowser,
			Logger:     log,
		})
	} else {
		jobText, _, err = ingestion.JobTextFromFile(jobFile)
	}
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	client, err := newClient(ctx, mergedClientConfig(jobProvider, jobModel, jobAPIKey))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	job, err := pipeline.ExtractJobDetails(ctx, client, jobText)
	if err != nil {
		return fmt.Errorf("job details extraction failed: %w", err)
	}
	if jobURL != "" {
		job.URL = jobURL
	}

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job details: %w", err)
	}

	if jobOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(jobOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", jobOut, err)
	}
	fmt.Printf("Job details written to %s\n", jobOut)
	return nil
}
