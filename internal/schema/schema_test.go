package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeflow/resumeflow/internal/types"
)

func sampleDescriptor() Descriptor {
	return Descriptor{
		Name:        "Sample",
		Description: "A sample document.",
		Fields: []Field{
			{Name: "title", Type: TypeString, Required: true, Description: "The title."},
			{Name: "tags", Type: TypeStringList, Description: "Optional tags."},
			{Name: "owner", Type: TypeObject, Description: "The owner.",
				Properties: []Field{
					{Name: "name", Type: TypeString, Required: true},
				}},
		},
	}
}

func TestFormatInstructions(t *testing.T) {
	out := sampleDescriptor().FormatInstructions()

	assert.Contains(t, out, `"title": string (required)`)
	assert.Contains(t, out, `"tags": []string`)
	assert.Contains(t, out, "Return ONLY valid JSON")
	assert.Contains(t, out, "no markdown")
}

func TestValidate_ConformingPayload(t *testing.T) {
	d := sampleDescriptor()

	err := d.Validate([]byte(`{"title": "Hello", "tags": ["a"], "owner": {"name": "Jane"}}`))
	assert.NoError(t, err)
}

func TestValidate_OptionalFieldsOmitted(t *testing.T) {
	d := sampleDescriptor()

	assert.NoError(t, d.Validate([]byte(`{"title": "Hello"}`)))
	assert.NoError(t, d.Validate([]byte(`{"title": "Hello", "tags": null}`)))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	d := sampleDescriptor()

	err := d.Validate([]byte(`{"tags": ["a"]}`))
	require.Error(t, err)

	verr, ok := err.(*ViolationError)
	require.True(t, ok, "expected *ViolationError, got %T", err)
	assert.Equal(t, "Sample", verr.Schema)
	assert.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Error(), "title")
}

func TestValidate_WrongFieldType(t *testing.T) {
	d := sampleDescriptor()

	err := d.Validate([]byte(`{"title": 42}`))
	require.Error(t, err)

	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
}

func TestValidate_NestedRequiredField(t *testing.T) {
	d := sampleDescriptor()

	// owner present but missing its required name
	err := d.Validate([]byte(`{"title": "Hello", "owner": {}}`))
	require.Error(t, err)
}

func TestJobDetailsDescriptor(t *testing.T) {
	d := JobDetails()

	payload := `{
		"job_title": "Staff Engineer",
		"keywords": ["go", "distributed systems"],
		"job_duties_and_responsibilities": ["Design services"],
		"required_qualifications": ["5+ years"],
		"company_name": "Acme Corp"
	}`
	assert.NoError(t, d.Validate([]byte(payload)))

	err := d.Validate([]byte(`{"job_title": "Staff Engineer"}`))
	assert.Error(t, err)
}

func TestSectionDescriptors(t *testing.T) {
	for _, name := range types.SectionNames() {
		d, err := Section(name)
		require.NoError(t, err, "section %s", name)
		assert.NotEmpty(t, d.Name)
		require.Len(t, d.Fields, 1)
		assert.Equal(t, name, d.Fields[0].Name)
		assert.True(t, d.Fields[0].Required)
	}

	_, err := Section("hobbies")
	assert.Error(t, err)
}

func TestSectionDescriptor_ValidatesEnvelope(t *testing.T) {
	d, err := Section(types.SectionSkills)
	require.NoError(t, err)

	good := `{"skill_section": [{"name": "Languages", "skills": ["Go", "Python"]}]}`
	assert.NoError(t, d.Validate([]byte(good)))

	// Envelope key missing entirely.
	assert.Error(t, d.Validate([]byte(`{}`)))

	// Group entries must carry a name.
	bad := `{"skill_section": [{"skills": ["Go"]}]}`
	assert.Error(t, d.Validate([]byte(bad)))
}

func TestResumeFullDescriptor(t *testing.T) {
	d := ResumeFull()

	assert.NoError(t, d.Validate([]byte(`{"name": "Jane Doe"}`)))
	assert.Error(t, d.Validate([]byte(`{"email": "jane@example.com"}`)))
}
