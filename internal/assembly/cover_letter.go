package assembly

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/resumeflow/resumeflow/internal/llm"
	"github.com/resumeflow/resumeflow/internal/prompts"
	"github.com/resumeflow/resumeflow/internal/types"
)

// CoverLetter generates a cover letter aligning the candidate's history
// with the job posting. The result is plain text, ready for rendering.
func CoverLetter(ctx context.Context, client llm.Client, job *types.JobPosting, profile *types.CandidateProfile) (string, error) {
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshaling job posting: %w", err)
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("marshaling candidate profile: %w", err)
	}

	persona := prompts.MustGet("extraction.json", "persona")
	template := prompts.MustGet("extraction.json", "cover_letter")
	task := prompts.Format(template, map[string]string{
		"JobDescription":  string(jobJSON),
		"WorkInformation": string(profileJSON),
	})

	letter, err := client.GenerateContent(ctx, persona+"\n\n"+task)
	if err != nil {
		return "", fmt.Errorf("generating cover letter: %w", err)
	}

	letter = strings.TrimSpace(letter)
	if letter == "" {
		return "", fmt.Errorf("cover letter generation returned empty output")
	}
	return letter, nil
}
