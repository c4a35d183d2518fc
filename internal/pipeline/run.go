// Package pipeline provides the high-level orchestration for turning a job
// posting and a candidate profile into tailored application documents.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumeflow/resumeflow/internal/assembly"
	"github.com/resumeflow/resumeflow/internal/ingestion"
	"github.com/resumeflow/resumeflow/internal/llm"
	"github.com/resumeflow/resumeflow/internal/logger"
	"github.com/resumeflow/resumeflow/internal/metrics"
	"github.com/resumeflow/resumeflow/internal/prompts"
	"github.com/resumeflow/resumeflow/internal/rendering"
	"github.com/resumeflow/resumeflow/internal/schema"
	"github.com/resumeflow/resumeflow/internal/types"
)

// State identifies the stage a run is in. Failures during the fetching
// and extraction states are fatal; assembling tolerates per-section
// failures; a rendering failure preserves the structured artifacts.
type State string

const (
	StateFetchingProfile State = "fetching_profile"
	StateFetchingJob     State = "fetching_job"
	StateAssembling      State = "assembling"
	StateRendering       State = "rendering"
	StateDone            State = "done"
	StateFailed          State = "failed"
)

// RunOptions holds configuration for a full generation run.
type RunOptions struct {
	Client llm.Client // Required: configured generation backend

	JobPath     string // Path to a job posting text file
	JobURL      string // URL to fetch the job posting from (exclusive with JobPath)
	ProfilePath string // Path to the candidate profile (JSON, PDF, or plain text)

	OutputDir    string // Directory for generated artifacts, defaults to "output"
	TemplatePath string // Custom LaTeX template, empty for the built-in one

	UseBrowser  bool // Fall back to a headless browser for JavaScript-heavy sites
	SkipPDF     bool // Stop after writing LaTeX, do not invoke pdflatex
	CoverLetter bool // Also generate a cover letter
	Verbose     bool

	Logger *zap.Logger // Optional, a default one is created when nil
}

// Scores holds lexical similarity between the job posting and the
// generated resume content.
type Scores struct {
	Overlap float64 `json:"overlap_coefficient"`
	Jaccard float64 `json:"jaccard_similarity"`
	Cosine  float64 `json:"cosine_similarity"`
}

// Result collects everything a run produced. On rendering or compilation
// failures the JSON artifacts are still present; check the individual path
// fields before using them.
type Result struct {
	RunID    string
	State    State
	Job      *types.JobPosting
	Resume   *types.Resume
	Sections []assembly.SectionResult

	JobDetailsPath  string
	ResumeJSONPath  string
	TexPath         string
	PDFPath         string
	CoverLetterPath string
	CoverLetterPDF  string

	CoverLetterText string
	Scores          *Scores
}

// Run executes the full pipeline: ingest the candidate profile, ingest and
// extract the job posting, assemble the tailored resume section by section,
// render it to LaTeX and PDF, and optionally generate a cover letter.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("no generation client configured")
	}
	if (opts.JobPath == "") == (opts.JobURL == "") {
		return nil, fmt.Errorf("exactly one of a job file or a job URL must be provided")
	}
	if opts.ProfilePath == "" {
		return nil, fmt.Errorf("no candidate profile provided")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}

	log := opts.Logger
	if log == nil {
		var err error
		log, err = logger.New(false, opts.Verbose)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	// Step 1: candidate profile.
	log.Info("loading candidate profile", zap.String("path", opts.ProfilePath))
	profile, err := loadProfile(ctx, opts.Client, opts.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("profile ingestion failed: %w", err)
	}

	// Step 2: job posting text.
	var jobText string
	var jobMeta *ingestion.Metadata
	if opts.JobURL != "" {
		log.Info("fetching job posting", zap.String("url", opts.JobURL))
		jobText, jobMeta, err = ingestion.JobTextFromURL(ctx, opts.JobURL, ingestion.JobOptions{
			UseBrowser: opts.UseBrowser,
			Logger:     log,
		})
	} else {
		log.Info("reading job posting", zap.String("path", opts.JobPath))
		jobText, jobMeta, err = ingestion.JobTextFromFile(opts.JobPath)
	}
	if err != nil {
		return nil, fmt.Errorf("job ingestion failed: %w", err)
	}

	// Step 3: structured job details. A failure here is fatal: every later
	// stage needs the posting's keywords and company identity.
	log.Info("extracting job details", zap.Int("text_length", len(jobText)))
	job, err := ExtractJobDetails(ctx, opts.Client, jobText)
	if err != nil {
		return nil, fmt.Errorf("job details extraction failed: %w", err)
	}
	if opts.JobURL != "" {
		job.URL = opts.JobURL
	}
	log.Info("job details extracted",
		zap.String("company", job.CompanyName),
		zap.String("title", job.JobTitle),
		zap.Int("keywords", len(job.Keywords)))

	paths := NewDocPaths(opts.OutputDir, job.CompanyName, job.JobTitle)
	if err := paths.EnsureDir(); err != nil {
		return nil, err
	}

	result := &Result{RunID: runID, State: StateAssembling, Job: job}

	result.JobDetailsPath = paths.For(DocJobDetails)
	if err := writeJSON(result.JobDetailsPath, job); err != nil {
		return nil, err
	}
	if jobMeta != nil {
		if err := jobMeta.WriteSidecar(result.JobDetailsPath + ".meta.json"); err != nil {
			log.Warn("failed to write job metadata", zap.Error(err))
		}
	}

	// Step 4: section-by-section resume assembly.
	log.Info("assembling resume sections")
	resume, sections, err := assembly.Build(ctx, opts.Client, job, profile)
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("resume assembly failed: %w", err)
	}
	result.Resume = resume
	result.Sections = sections
	for _, s := range sections {
		if s.Failed() {
			log.Warn("section generation failed", zap.String("section", s.Name), zap.Error(s.Err))
		}
	}

	result.ResumeJSONPath = paths.For(DocResume)
	if err := writeJSON(result.ResumeJSONPath, resume); err != nil {
		return nil, err
	}

	// Step 5: rendering. The JSON artifacts written above survive any
	// failure from here on.
	result.State = StateRendering
	log.Info("rendering LaTeX resume")
	latex, err := rendering.Render(resume, opts.TemplatePath)
	if err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("resume rendering failed: %w", err)
	}
	result.TexPath = paths.WithExt(".tex")
	if err := os.WriteFile(result.TexPath, []byte(latex), 0o644); err != nil {
		result.State = StateFailed
		return result, fmt.Errorf("failed to write LaTeX file: %w", err)
	}

	if !opts.SkipPDF {
		log.Info("compiling PDF", zap.String("tex", result.TexPath))
		doc, err := rendering.CompileLaTeX(ctx, result.TexPath, paths.WithExt(".pdf"))
		if doc != nil {
			result.PDFPath = doc.PDFPath
		}
		if err != nil {
			// The .tex source is kept for manual compilation, so a pdflatex
			// failure does not abort the run.
			log.Warn("PDF compilation failed", zap.Error(err))
		}
	}

	// Step 6: optional cover letter.
	if opts.CoverLetter {
		log.Info("generating cover letter")
		letter, err := assembly.CoverLetter(ctx, opts.Client, job, profile)
		if err != nil {
			log.Warn("cover letter generation failed", zap.Error(err))
		} else {
			result.CoverLetterText = letter
			result.CoverLetterPath = paths.For(DocCoverLetter)
			if err := os.WriteFile(result.CoverLetterPath, []byte(letter), 0o644); err != nil {
				result.State = StateFailed
				return result, fmt.Errorf("failed to write cover letter: %w", err)
			}
			if !opts.SkipPDF {
				pdfPath := strings.TrimSuffix(result.CoverLetterPath, ".txt") + ".pdf"
				if err := rendering.TextToPDF(letter, pdfPath); err != nil {
					log.Warn("cover letter PDF failed", zap.Error(err))
				} else {
					result.CoverLetterPDF = pdfPath
				}
			}
		}
	}

	// Step 7: similarity report between the posting and the generated resume.
	resumeJSON, err := json.Marshal(resume)
	if err == nil {
		result.Scores = &Scores{
			Overlap: metrics.OverlapCoefficient(string(resumeJSON), jobText),
			Jaccard: metrics.JaccardSimilarity(string(resumeJSON), jobText),
			Cosine:  metrics.CosineSimilarity(string(resumeJSON), jobText),
		}
		log.Info("similarity to posting",
			zap.Float64("overlap", result.Scores.Overlap),
			zap.Float64("jaccard", result.Scores.Jaccard),
			zap.Float64("cosine", result.Scores.Cosine))

		// How much of the candidate's full history survived tailoring.
		if profileJSON, perr := json.Marshal(profile); perr == nil {
			log.Info("similarity to profile",
				zap.Float64("overlap", metrics.OverlapCoefficient(string(resumeJSON), string(profileJSON))),
				zap.Float64("jaccard", metrics.JaccardSimilarity(string(resumeJSON), string(profileJSON))))
		}
	}

	result.State = StateDone
	log.Info("run complete", zap.String("output_dir", paths.Dir))
	return result, nil
}

// loadProfile reads the candidate profile. Structured JSON profiles are
// loaded directly; PDF and plain-text resumes go through model extraction.
func loadProfile(ctx context.Context, client llm.Client, path string) (*types.CandidateProfile, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ingestion.LoadProfile(path)
	}

	text, _, err := ingestion.ProfileText(path)
	if err != nil {
		return nil, err
	}

	payload, err := llm.Extract(ctx, client, llm.ExtractInput{
		Text:       text,
		Schema:     schema.ResumeFull(),
		Persona:    prompts.MustGet("extraction.json", "persona"),
		TaskPrompt: prompts.MustGet("extraction.json", "resume_extractor"),
		LongOutput: true,
	})
	if err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse extracted profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ExtractJobDetails runs structured extraction over cleaned posting text.
func ExtractJobDetails(ctx context.Context, client llm.Client, jobText string) (*types.JobPosting, error) {
	payload, err := llm.Extract(ctx, client, llm.ExtractInput{
		Text:       jobText,
		Schema:     schema.JobDetails(),
		Persona:    prompts.MustGet("extraction.json", "persona"),
		TaskPrompt: prompts.MustGet("extraction.json", "job_details"),
	})
	if err != nil {
		return nil, err
	}

	var job types.JobPosting
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job details: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
