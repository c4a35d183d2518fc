package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resumeflow/resumeflow/internal/ingestion"
	"github.com/resumeflow/resumeflow/internal/metrics"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long:  "Compute lexical similarity scores between a resume and a job posting. Both inputs may be plain text or PDF files. With --semantic, an embedding-based cosine similarity is added.",
	RunE:  runScoreCmd,
}

var (
	scoreResume   string
	scoreJob      string
	scoreSemantic bool
	scoreProvider string
	scoreModel    string
	scoreAPIKey   string
)

func init() {
	scoreCommand.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume file (PDF or plain text)")
	scoreCommand.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting file (PDF or plain text)")
	scoreCommand.Flags().BoolVar(&scoreSemantic, "semantic", false, "Also compute embedding-based cosine similarity (requires an API key)")
	scoreCommand.Flags().StringVar(&scoreProvider, "provider", "gemini", "Embedding backend for --semantic: gemini, openai, or ollama")
	scoreCommand.Flags().StringVarP(&scoreModel, "model", "m", "", "Model name override")
	scoreCommand.Flags().StringVar(&scoreAPIKey, "api-key", "", "Backend API key (defaults to GEMINI_API_KEY or OPENAI_API_KEY env var)")

	_ = scoreCommand.MarkFlagRequired("resume")
	_ = scoreCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(_ *cobra.Command, _ []string) error {
	resumeText, _, err := ingestion.ProfileText(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobText, _, err := ingestion.ProfileText(scoreJob)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	report := map[string]float64{
		"overlap_coefficient": metrics.OverlapCoefficient(resumeText, jobText),
		"jaccard_similarity":  metrics.JaccardSimilarity(resumeText, jobText),
		"cosine_similarity":   metrics.CosineSimilarity(resumeText, jobText),
	}

	if scoreSemantic {
		ctx := context.Background()
		client, err := newClient(ctx, mergedClientConfig(scoreProvider, scoreModel, scoreAPIKey))
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		semantic, err := metrics.EmbeddingCosine(ctx, client, resumeText, jobText)
		if err != nil {
			return fmt.Errorf("embedding similarity failed: %w", err)
		}
		report["embedding_cosine"] = semantic
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
