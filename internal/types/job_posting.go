// Package types defines the wire-format structures shared across the
// pipeline: the structured job posting, the candidate profile, and the
// tailored resume.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// JobPosting is the structured representation of a job description,
// extracted from raw posting text.
type JobPosting struct {
	JobTitle                  string   `json:"job_title" validate:"required"`
	JobPurpose                string   `json:"job_purpose,omitempty"`
	Keywords                  []string `json:"keywords"`
	DutiesAndResponsibilities []string `json:"job_duties_and_responsibilities"`
	RequiredQualifications    []string `json:"required_qualifications"`
	PreferredQualifications   []string `json:"preferred_qualifications,omitempty"`
	CompanyName               string   `json:"company_name" validate:"required"`
	CompanyDetails            string   `json:"company_details,omitempty"`
	URL                       string   `json:"url,omitempty"`
}

// Validate checks that the posting carries the fields the rest of the
// pipeline depends on.
func (j *JobPosting) Validate() error {
	err := validate.Struct(j)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, jobFieldName(fe.StructField()))
	}
	return fmt.Errorf("job posting missing required fields: %s", strings.Join(missing, ", "))
}

// jobFieldName maps struct field names to their wire names.
func jobFieldName(field string) string {
	switch field {
	case "JobTitle":
		return "job_title"
	case "CompanyName":
		return "company_name"
	default:
		return strings.ToLower(field)
	}
}
