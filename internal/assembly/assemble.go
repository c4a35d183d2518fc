// Package assembly builds a tailored resume from a structured job
// posting and a candidate profile. The six resume sections are generated
// concurrently, each against its own schema, and merged into a single
// document. A failed section leaves its slot empty; it never sinks the
// whole resume.
package assembly

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/resumeflow/resumeflow/internal/llm"
	"github.com/resumeflow/resumeflow/internal/prompts"
	"github.com/resumeflow/resumeflow/internal/schema"
	"github.com/resumeflow/resumeflow/internal/types"
)

// SectionResult reports the outcome of generating one resume section.
type SectionResult struct {
	Name string
	Err  error
}

// Failed reports whether the section generation failed.
func (r SectionResult) Failed() bool {
	return r.Err != nil
}

// Build generates a tailored resume. Personal details come straight
// from the profile; the six sections are tailored concurrently against
// the job posting; keywords are copied from the posting last, after all
// sections have merged.
func Build(ctx context.Context, client llm.Client, job *types.JobPosting, profile *types.CandidateProfile) (*types.Resume, []SectionResult, error) {
	resume := &types.Resume{
		Name:    profile.Name,
		Summary: profile.Summary,
		Phone:   profile.Phone,
		Email:   profile.Email,
		Media:   profile.Media,
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return nil, nil, fmt.Errorf("marshaling job posting: %w", err)
	}

	persona := prompts.MustGet("extraction.json", "persona")

	sections := types.SectionNames()
	payloads := make([]json.RawMessage, len(sections))
	results := make([]SectionResult, len(sections))

	g, gCtx := errgroup.WithContext(ctx)
	for i, section := range sections {
		i, section := i, section
		g.Go(func() error {
			payload, err := buildSection(gCtx, client, persona, section, string(jobJSON), profile)
			payloads[i] = payload
			results[i] = SectionResult{Name: section, Err: err}
			// Section failures are recorded, not propagated; the other
			// sections keep going.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for i, section := range sections {
		if results[i].Err != nil || payloads[i] == nil {
			continue
		}
		if err := resume.SetSection(section, payloads[i]); err != nil {
			results[i].Err = err
		}
	}

	resume.SkillSection = filterEmptySkillGroups(resume.SkillSection)

	resume.Keywords = make([]string, len(job.Keywords))
	copy(resume.Keywords, job.Keywords)

	return resume, results, nil
}

// buildSection tailors one resume section. A section whose profile data
// is empty is skipped without a model call.
func buildSection(ctx context.Context, client llm.Client, persona, section, jobJSON string, profile *types.CandidateProfile) (json.RawMessage, error) {
	data, err := profile.SectionData(section)
	if err != nil {
		return nil, err
	}

	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s data: %w", section, err)
	}
	if emptySectionData(dataJSON) {
		return nil, nil
	}

	desc, err := schema.Section(section)
	if err != nil {
		return nil, err
	}

	template, err := prompts.Get("sections.json", section)
	if err != nil {
		return nil, err
	}
	task := prompts.Format(template, map[string]string{
		"SectionData":    string(dataJSON),
		"JobDescription": jobJSON,
	})

	payload, err := llm.Extract(ctx, client, llm.ExtractInput{
		Schema:     desc,
		Persona:    persona,
		TaskPrompt: task,
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func emptySectionData(dataJSON []byte) bool {
	switch string(dataJSON) {
	case "null", "[]", "{}", `""`:
		return true
	}
	return false
}

// filterEmptySkillGroups drops skill groups that carry no skills.
func filterEmptySkillGroups(groups []types.SkillGroup) []types.SkillGroup {
	if len(groups) == 0 {
		return groups
	}
	filtered := groups[:0]
	for _, g := range groups {
		if len(g.Skills) > 0 {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
