package schema

import (
	"fmt"

	"github.com/resumeflow/resumeflow/internal/types"
)

// JobDetails returns the extraction descriptor for job postings.
func JobDetails() Descriptor {
	return Descriptor{
		Name:        "JobDetails",
		Description: "Key details of a job posting, structured for resume and cover letter tailoring.",
		Fields: []Field{
			{Name: "job_title", Type: TypeString, Required: true,
				Description: "The specific role, its level, and scope within the organization."},
			{Name: "job_purpose", Type: TypeString,
				Description: "A high-level overview of the role and why it exists in the organization."},
			{Name: "keywords", Type: TypeStringList, Required: true,
				Description: "Key expertise, skills, and requirements the job demands."},
			{Name: "job_duties_and_responsibilities", Type: TypeStringList, Required: true,
				Description: "Essential functions, level of decision-making, areas of accountability, and any supervisory responsibilities."},
			{Name: "required_qualifications", Type: TypeStringList, Required: true,
				Description: "Education, minimum experience, specific knowledge, skills, abilities, and required licenses or certifications."},
			{Name: "preferred_qualifications", Type: TypeStringList,
				Description: "Additional nice-to-have qualifications that could set a candidate apart."},
			{Name: "company_name", Type: TypeString, Required: true,
				Description: "The name of the hiring organization."},
			{Name: "company_details", Type: TypeString,
				Description: "Overview, mission, values, or way of working relevant for tailoring a resume or cover letter."},
		},
	}
}

func experienceFields() []Field {
	return []Field{
		{Name: "role", Type: TypeString, Required: true,
			Description: "The job title or position held. e.g. Software Engineer."},
		{Name: "company", Type: TypeString, Required: true,
			Description: "The name of the company or organization."},
		{Name: "location", Type: TypeString,
			Description: "The location of the company or organization. e.g. San Francisco, USA."},
		{Name: "from_date", Type: TypeString,
			Description: "The start date of the employment period. e.g. Aug 2023."},
		{Name: "to_date", Type: TypeString,
			Description: "The end date of the employment period. e.g. Nov 2025."},
		{Name: "description", Type: TypeStringList,
			Description: "Bullet points describing the work, each in 'Did X by doing Y, achieved Z' form, quantified and tailored to the job."},
	}
}

func educationFields() []Field {
	return []Field{
		{Name: "degree", Type: TypeString, Required: true,
			Description: "The degree or qualification obtained and the field of study. e.g. Bachelor of Science in Computer Science."},
		{Name: "university", Type: TypeString, Required: true,
			Description: "The institution where the degree was obtained, with location."},
		{Name: "from_date", Type: TypeString, Description: "The start date of the education period."},
		{Name: "to_date", Type: TypeString, Description: "The end date of the education period."},
		{Name: "courses", Type: TypeStringList, Description: "Relevant courses or subjects studied."},
	}
}

func skillGroupFields() []Field {
	return []Field{
		{Name: "name", Type: TypeString, Required: true,
			Description: "Name of the skill group, such as programming languages, tools and technologies, or cloud and DevOps."},
		{Name: "skills", Type: TypeStringList, Required: true,
			Description: "Specific skills within the group, such as Python, JavaScript, SQL."},
	}
}

func projectFields() []Field {
	return []Field{
		{Name: "name", Type: TypeString, Required: true, Description: "The name or title of the project."},
		{Name: "type", Type: TypeString,
			Description: "The type or category of the project, such as hackathon, publication, professional, or academic."},
		{Name: "link", Type: TypeString, Description: "A link to the project repository or demo."},
		{Name: "resources", Type: TypeObjectList,
			Description: "Additional resources related to the project, such as documentation or slides.",
			Properties: []Field{
				{Name: "name", Type: TypeString, Description: "The name or title of the link."},
				{Name: "link", Type: TypeString, Description: "The URL of the link."},
			}},
		{Name: "from_date", Type: TypeString, Description: "The start date of the project."},
		{Name: "to_date", Type: TypeString, Description: "The end date of the project."},
		{Name: "description", Type: TypeStringList,
			Description: "Bullet points describing the project, quantified and tailored to the job."},
	}
}

func certificationFields() []Field {
	return []Field{
		{Name: "name", Type: TypeString, Required: true, Description: "The name of the certification."},
		{Name: "by", Type: TypeString, Description: "The organization or institution that issued the certification."},
		{Name: "link", Type: TypeString, Description: "A link to verify the certification."},
	}
}

// Section returns the extraction descriptor for one of the six resume
// sections. The payload for every section is an envelope object keyed by
// the section name.
func Section(name string) (Descriptor, error) {
	switch name {
	case types.SectionWorkExperience:
		return Descriptor{
			Name:        "WorkExperience",
			Description: "Work experiences tailored to the job description.",
			Fields: []Field{{
				Name: "work_experience", Type: TypeObjectList, Required: true,
				Description: "work experiences, including title, company, location, dates, and description",
				Properties:  experienceFields(),
			}},
		}, nil
	case types.SectionEducation:
		return Descriptor{
			Name:        "Education",
			Description: "Educational qualifications tailored to the job description.",
			Fields: []Field{{
				Name: "education", Type: TypeObjectList, Required: true,
				Description: "education entries, including degree, institution, dates, and relevant courses",
				Properties:  educationFields(),
			}},
		}, nil
	case types.SectionSkills:
		return Descriptor{
			Name:        "SkillSections",
			Description: "Skill groups relevant to the job description.",
			Fields: []Field{{
				Name: "skill_section", Type: TypeObjectList, Required: true,
				Description: "skill groups, each with a name and the skills it contains",
				Properties:  skillGroupFields(),
			}},
		}, nil
	case types.SectionProjects:
		return Descriptor{
			Name:        "Projects",
			Description: "Project experiences tailored to the job description.",
			Fields: []Field{{
				Name: "projects", Type: TypeObjectList, Required: true,
				Description: "projects, including name, type, link, dates, and description",
				Properties:  projectFields(),
			}},
		}, nil
	case types.SectionCertifications:
		return Descriptor{
			Name:        "Certifications",
			Description: "Certifications relevant to the job description.",
			Fields: []Field{{
				Name: "certifications", Type: TypeObjectList, Required: true,
				Description: "certifications, including name, issuer, and verification link",
				Properties:  certificationFields(),
			}},
		}, nil
	case types.SectionAchievements:
		return Descriptor{
			Name:        "Achievements",
			Description: "Key accomplishments, awards, or recognitions relevant to the job description.",
			Fields: []Field{{
				Name: "achievements", Type: TypeStringList, Required: true,
				Description: "Job-relevant accomplishments, awards, or recognitions.",
			}},
		}, nil
	default:
		return Descriptor{}, fmt.Errorf("unknown resume section: %s", name)
	}
}

// ResumeFull returns the descriptor for a complete candidate profile,
// used when extracting structured data from a resume PDF.
func ResumeFull() Descriptor {
	return Descriptor{
		Name:        "Resume",
		Description: "A complete structured representation of a candidate's resume.",
		Fields: []Field{
			{Name: "name", Type: TypeString, Required: true, Description: "The full name of the candidate."},
			{Name: "summary", Type: TypeString,
				Description: "A brief summary highlighting key skills, experience, and career goals."},
			{Name: "phone", Type: TypeString, Description: "The contact phone number of the candidate."},
			{Name: "email", Type: TypeString, Description: "The contact email address of the candidate."},
			{Name: "media", Type: TypeObject,
				Description: "Links to professional profiles.",
				Properties: []Field{
					{Name: "linkedin", Type: TypeString, Description: "LinkedIn profile URL."},
					{Name: "github", Type: TypeString, Description: "GitHub profile URL."},
					{Name: "medium", Type: TypeString, Description: "Medium profile URL."},
					{Name: "devpost", Type: TypeString, Description: "Devpost profile URL."},
				}},
			{Name: "work_experience", Type: TypeObjectList, Properties: experienceFields(),
				Description: "work experiences, including title, company, location, dates, and description"},
			{Name: "education", Type: TypeObjectList, Properties: educationFields(),
				Description: "education entries, including degree, institution, dates, and relevant courses"},
			{Name: "skill_section", Type: TypeObjectList, Properties: skillGroupFields(),
				Description: "skill groups, each with a name and the skills it contains"},
			{Name: "projects", Type: TypeObjectList, Properties: projectFields(),
				Description: "projects, including name, type, link, dates, and description"},
			{Name: "certifications", Type: TypeObjectList, Properties: certificationFields(),
				Description: "certifications, including name, issuer, and verification link"},
			{Name: "achievements", Type: TypeStringList,
				Description: "Key accomplishments, awards, or recognitions."},
		},
	}
}
