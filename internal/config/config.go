// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/resumeflow/resumeflow/internal/llm"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job     string `json:"job,omitempty"`     // Path to job posting text file
	JobURL  string `json:"job_url,omitempty"` // URL to fetch job posting from
	Profile string `json:"profile,omitempty"` // Path to candidate profile (JSON, PDF, or text)

	// Outputs
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated artifacts
	Template  string `json:"template,omitempty"`   // Path to LaTeX template

	// Backend
	Provider string `json:"provider,omitempty"` // Generation backend: gemini, openai, or ollama
	Model    string `json:"model,omitempty"`    // Model name override
	APIKey   string `json:"api_key,omitempty"`  // Backend API key

	// Behavior
	UseBrowser     bool `json:"use_browser,omitempty"`     // Use headless browser for SPA sites
	SkipPDF        bool `json:"skip_pdf,omitempty"`        // Stop after LaTeX, skip pdflatex
	CoverLetter    bool `json:"cover_letter,omitempty"`    // Also generate a cover letter
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Overall run timeout
}

// Error represents a configuration problem.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required
// fields are not checked here; they are enforced by CLI flag validation
// after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return &Error{Message: "'job' and 'job_url' are mutually exclusive"}
	}

	if c.TimeoutSeconds < 0 {
		return &Error{Field: "timeout_seconds", Message: "must be non-negative"}
	}

	if c.Provider != "" {
		switch llm.Provider(c.Provider) {
		case llm.ProviderGemini, llm.ProviderOpenAI, llm.ProviderOllama:
		default:
			return &Error{Field: "provider", Message: fmt.Sprintf("unknown provider %q", c.Provider)}
		}
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return &Error{Field: "template", Message: fmt.Sprintf("file not found: %s", c.Template)}
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return &Error{Field: "job", Message: fmt.Sprintf("file not found: %s", c.Job)}
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return &Error{Field: "profile", Message: fmt.Sprintf("file not found: %s", c.Profile)}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.SkipPDF = result.SkipPDF || defaults.SkipPDF
	result.CoverLetter = result.CoverLetter || defaults.CoverLetter
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
