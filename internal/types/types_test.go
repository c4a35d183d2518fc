package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPostingValidate(t *testing.T) {
	posting := &JobPosting{
		JobTitle:    "Staff Engineer",
		CompanyName: "Acme Corp",
	}
	assert.NoError(t, posting.Validate())
}

func TestJobPostingValidate_MissingFields(t *testing.T) {
	posting := &JobPosting{Keywords: []string{"go"}}

	err := posting.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_title")
	assert.Contains(t, err.Error(), "company_name")
}

func TestCandidateProfileValidate(t *testing.T) {
	profile := &CandidateProfile{Name: "Jane Doe"}
	assert.NoError(t, profile.Validate())

	empty := &CandidateProfile{}
	assert.Error(t, empty.Validate())
}

func TestCandidateProfileSectionData(t *testing.T) {
	profile := &CandidateProfile{
		Name:         "Jane Doe",
		SkillSection: []SkillGroup{{Name: "Languages", Skills: []string{"Go"}}},
		Achievements: []string{"Won a hackathon"},
	}

	data, err := profile.SectionData(SectionSkills)
	require.NoError(t, err)
	groups, ok := data.([]SkillGroup)
	require.True(t, ok)
	assert.Equal(t, "Languages", groups[0].Name)

	data, err = profile.SectionData(SectionAchievements)
	require.NoError(t, err)
	assert.Equal(t, []string{"Won a hackathon"}, data)

	_, err = profile.SectionData("hobbies")
	assert.Error(t, err)
}

func TestResumeSetSection(t *testing.T) {
	var resume Resume

	payload := json.RawMessage(`{"work_experience": [{"role": "Engineer", "company": "Acme", "description": ["Built things"]}]}`)
	require.NoError(t, resume.SetSection(SectionWorkExperience, payload))
	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "Engineer", resume.WorkExperience[0].Role)
	assert.False(t, resume.SectionEmpty(SectionWorkExperience))
}

func TestResumeSetSection_UnknownSection(t *testing.T) {
	var resume Resume
	err := resume.SetSection("hobbies", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestResumeSetSection_MissingEnvelopeKey(t *testing.T) {
	var resume Resume
	require.NoError(t, resume.SetSection(SectionProjects, json.RawMessage(`{}`)))
	assert.True(t, resume.SectionEmpty(SectionProjects))
}

func TestResumeKeywordsAlwaysSerialized(t *testing.T) {
	resume := Resume{Name: "Jane Doe"}

	data, err := json.Marshal(&resume)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	_, present := raw["keywords"]
	assert.True(t, present, "keywords must serialize even when empty")
}

func TestSectionNamesOrder(t *testing.T) {
	names := SectionNames()
	require.Len(t, names, 6)
	assert.Equal(t, SectionWorkExperience, names[0])
	assert.Equal(t, SectionAchievements, names[5])
}
