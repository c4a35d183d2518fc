package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/resumeflow/resumeflow/internal/config"
	"github.com/resumeflow/resumeflow/internal/llm"
	"github.com/resumeflow/resumeflow/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full generation pipeline end-to-end",
	Long: `Orchestrates the entire generation process: ingestion -> job extraction -> section-by-section resume assembly -> LaTeX rendering -> PDF compilation -> cover letter.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runJob         string
	runJobURL      string
	runProfile     string
	runOutputDir   string
	runTemplate    string
	runProvider    string
	runModel       string
	runAPIKey      string
	runUseBrowser  bool
	runSkipPDF     bool
	runCoverLetter bool
	runVerbose     bool
	runTimeout     int
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	runCommand.Flags().StringVarP(&runProfile, "profile", "p", "", "Path to candidate profile (JSON, PDF, or plain text)")
	runCommand.Flags().StringVarP(&runOutputDir, "output", "o", "", "Directory for generated artifacts")
	runCommand.Flags().StringVarP(&runTemplate, "template", "t", "", "Path to a custom LaTeX template")
	runCommand.Flags().StringVar(&runProvider, "provider", "", "Generation backend: gemini, openai, or ollama")
	runCommand.Flags().StringVarP(&runModel, "model", "m", "", "Model name override")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Backend API key (defaults to GEMINI_API_KEY or OPENAI_API_KEY env var)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for JavaScript-heavy sites (requires Chrome)")
	runCommand.Flags().BoolVar(&runSkipPDF, "skip-pdf", false, "Stop after writing LaTeX, do not invoke pdflatex")
	runCommand.Flags().BoolVar(&runCoverLetter, "cover-letter", false, "Also generate a cover letter")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().IntVar(&runTimeout, "timeout", 0, "Overall run timeout in seconds (0 for none)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("job") {
		cfg.Job = runJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = runJobURL
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = runProfile
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = runTemplate
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = runProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("skip-pdf") {
		cfg.SkipPDF = runSkipPDF
	}
	if cmd.Flags().Changed("cover-letter") {
		cfg.CoverLetter = runCoverLetter
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = runTimeout
	}

	// Step 3: apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Provider:  string(llm.ProviderGemini),
		OutputDir: "output",
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Profile == "" {
		return fmt.Errorf("a candidate profile is required (use --profile)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("a job posting is required (use --job or --job-url)")
	}

	ctx := context.Background()
	if cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Client:       client,
		JobPath:      cfg.Job,
		JobURL:       cfg.JobURL,
		ProfilePath:  cfg.Profile,
		OutputDir:    cfg.OutputDir,
		TemplatePath: cfg.Template,
		UseBrowser:   cfg.UseBrowser,
		SkipPDF:      cfg.SkipPDF,
		CoverLetter:  cfg.CoverLetter,
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Generated documents for %s at %s:\n", result.Job.JobTitle, result.Job.CompanyName)
	fmt.Printf("  job details:  %s\n", result.JobDetailsPath)
	fmt.Printf("  resume JSON:  %s\n", result.ResumeJSONPath)
	if result.TexPath != "" {
		fmt.Printf("  resume LaTeX: %s\n", result.TexPath)
	}
	if result.PDFPath != "" {
		fmt.Printf("  resume PDF:   %s\n", result.PDFPath)
	}
	if result.CoverLetterPath != "" {
		fmt.Printf("  cover letter: %s\n", result.CoverLetterPath)
	}
	if result.Scores != nil {
		fmt.Printf("Similarity to posting: overlap %.3f, jaccard %.3f, cosine %.3f\n",
			result.Scores.Overlap, result.Scores.Jaccard, result.Scores.Cosine)
	}
	return nil
}

// mergedClientConfig builds a minimal config for subcommands that only
// need a backend client.
func mergedClientConfig(provider, model, apiKey string) config.Config {
	return config.Config{Provider: provider, Model: model, APIKey: apiKey}
}

// newClient builds the generation backend from merged configuration. The
// API key falls back to the provider's conventional environment variable.
func newClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	provider := llm.Provider(cfg.Provider)

	apiKey := cfg.APIKey
	if apiKey == "" {
		switch provider {
		case llm.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		case llm.ProviderGemini:
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if apiKey == "" && provider != llm.ProviderOllama {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY or OPENAI_API_KEY, or use --api-key)")
	}

	return llm.NewClient(ctx, llm.ConfigFor(provider).WithModel(cfg.Model), apiKey)
}
