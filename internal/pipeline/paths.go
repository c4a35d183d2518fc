package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode"
)

// DocKind identifies one of the artifacts a run produces for a job application.
type DocKind string

const (
	DocJobDetails  DocKind = "jd"
	DocResume      DocKind = "resume"
	DocCoverLetter DocKind = "cv"
)

// maxTitleKey bounds the job-title component of document names so that long
// titles like "Senior Staff Software Engineer, Infrastructure (Remote)" do
// not produce unwieldy file names.
const maxTitleKey = 15

// DocPaths computes the output locations for a single company/title pair.
// All documents for one company share a per-company subdirectory.
type DocPaths struct {
	Dir  string // output subdirectory, e.g. out/AcmeCorp
	Base string // document base name, e.g. AcmeCorp_StaffSoftwareEn
}

// NewDocPaths builds the document paths for a run. Company and title are
// cleaned into filesystem-safe keys; the title key is truncated.
func NewDocPaths(outputDir, company, title string) DocPaths {
	companyKey := CleanKey(company)
	if companyKey == "" {
		companyKey = "Unknown"
	}
	titleKey := CleanKey(title)
	if runes := []rune(titleKey); len(runes) > maxTitleKey {
		titleKey = string(runes[:maxTitleKey])
	}

	return DocPaths{
		Dir:  filepath.Join(outputDir, companyKey),
		Base: companyKey + "_" + titleKey,
	}
}

// EnsureDir creates the per-company output directory.
func (p DocPaths) EnsureDir() error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", p.Dir, err)
	}
	return nil
}

// For returns the full path for one of the run's documents.
func (p DocPaths) For(kind DocKind) string {
	switch kind {
	case DocJobDetails:
		return filepath.Join(p.Dir, p.Base+"_JD.json")
	case DocResume:
		return filepath.Join(p.Dir, p.Base+"_resume.json")
	case DocCoverLetter:
		return filepath.Join(p.Dir, p.Base+"_cv.txt")
	}
	return filepath.Join(p.Dir, p.Base+"_")
}

// WithExt returns a sibling path for the resume document with a different
// extension, used for the rendered .tex and .pdf outputs.
func (p DocPaths) WithExt(ext string) string {
	return filepath.Join(p.Dir, p.Base+"_resume"+ext)
}

// CleanKey converts free text into a filesystem-safe key: words are
// title-cased, then everything that is not a letter or digit is removed.
// "Acme Corp, Inc." becomes "AcmeCorpInc".
func CleanKey(text string) string {
	out := make([]rune, 0, len(text))
	prevLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if prevLetter {
				out = append(out, unicode.ToLower(r))
			} else {
				out = append(out, unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
		prevLetter = false
	}
	return string(out)
}
