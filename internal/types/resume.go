package types

import (
	"encoding/json"
	"fmt"
)

// Resume section names as they appear on the wire.
const (
	SectionWorkExperience = "work_experience"
	SectionEducation      = "education"
	SectionSkills         = "skill_section"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
)

// SectionNames returns the resume sections in canonical document order.
func SectionNames() []string {
	return []string{
		SectionWorkExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionAchievements,
	}
}

// Media holds links to the candidate's professional profiles.
type Media struct {
	Linkedin string `json:"linkedin,omitempty"`
	Github   string `json:"github,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Devpost  string `json:"devpost,omitempty"`
}

// Experience is a single work-experience entry.
type Experience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	FromDate    string   `json:"from_date,omitempty"`
	ToDate      string   `json:"to_date,omitempty"`
	Description []string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	Degree     string   `json:"degree"`
	University string   `json:"university"`
	FromDate   string   `json:"from_date,omitempty"`
	ToDate     string   `json:"to_date,omitempty"`
	Courses    []string `json:"courses,omitempty"`
}

// SkillGroup is a named group of related skills.
type SkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Link is a named URL.
type Link struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Project is a single project entry.
type Project struct {
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Link        string   `json:"link,omitempty"`
	Resources   []Link   `json:"resources,omitempty"`
	FromDate    string   `json:"from_date,omitempty"`
	ToDate      string   `json:"to_date,omitempty"`
	Description []string `json:"description"`
}

// Certification is a single certification entry.
type Certification struct {
	Name string `json:"name"`
	By   string `json:"by,omitempty"`
	Link string `json:"link,omitempty"`
}

// CandidateProfile is the candidate's full history: everything they have
// done, before any tailoring to a particular job.
type CandidateProfile struct {
	Name           string          `json:"name" validate:"required"`
	Summary        string          `json:"summary,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Media          Media           `json:"media"`
	WorkExperience []Experience    `json:"work_experience"`
	Education      []Education     `json:"education"`
	SkillSection   []SkillGroup    `json:"skill_section"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []string        `json:"achievements"`
}

// Validate checks that the profile carries the minimum required fields.
func (p *CandidateProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("candidate profile missing required fields: name")
	}
	return nil
}

// SectionData returns the profile data backing one resume section.
func (p *CandidateProfile) SectionData(section string) (any, error) {
	switch section {
	case SectionWorkExperience:
		return p.WorkExperience, nil
	case SectionEducation:
		return p.Education, nil
	case SectionSkills:
		return p.SkillSection, nil
	case SectionProjects:
		return p.Projects, nil
	case SectionCertifications:
		return p.Certifications, nil
	case SectionAchievements:
		return p.Achievements, nil
	default:
		return nil, fmt.Errorf("unknown resume section: %s", section)
	}
}

// Resume is the tailored output document. Keywords always serializes,
// even when empty, so downstream scoring can rely on its presence.
type Resume struct {
	Name           string          `json:"name"`
	Summary        string          `json:"summary,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Media          Media           `json:"media"`
	WorkExperience []Experience    `json:"work_experience"`
	Education      []Education     `json:"education"`
	SkillSection   []SkillGroup    `json:"skill_section"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []string        `json:"achievements"`
	Keywords       []string        `json:"keywords"`
}

// sectionEnvelope mirrors the single-key envelope object each section
// extraction returns, e.g. {"work_experience": [...]}.
type sectionEnvelope struct {
	WorkExperience []Experience    `json:"work_experience"`
	Education      []Education     `json:"education"`
	SkillSection   []SkillGroup    `json:"skill_section"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []string        `json:"achievements"`
}

// SetSection decodes a section envelope payload and installs it on the
// resume. An unknown section name is an error; a missing envelope key
// leaves the section empty.
func (r *Resume) SetSection(section string, payload json.RawMessage) error {
	var env sectionEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("decoding %s section: %w", section, err)
	}

	switch section {
	case SectionWorkExperience:
		r.WorkExperience = env.WorkExperience
	case SectionEducation:
		r.Education = env.Education
	case SectionSkills:
		r.SkillSection = env.SkillSection
	case SectionProjects:
		r.Projects = env.Projects
	case SectionCertifications:
		r.Certifications = env.Certifications
	case SectionAchievements:
		r.Achievements = env.Achievements
	default:
		return fmt.Errorf("unknown resume section: %s", section)
	}
	return nil
}

// SectionEmpty reports whether a section holds no entries.
func (r *Resume) SectionEmpty(section string) bool {
	switch section {
	case SectionWorkExperience:
		return len(r.WorkExperience) == 0
	case SectionEducation:
		return len(r.Education) == 0
	case SectionSkills:
		return len(r.SkillSection) == 0
	case SectionProjects:
		return len(r.Projects) == 0
	case SectionCertifications:
		return len(r.Certifications) == 0
	case SectionAchievements:
		return len(r.Achievements) == 0
	default:
		return true
	}
}
