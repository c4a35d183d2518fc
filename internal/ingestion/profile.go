package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/resumeflow/resumeflow/internal/fetch"
	"github.com/resumeflow/resumeflow/internal/types"
)

// LoadProfile reads a structured candidate profile from a JSON file.
func LoadProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileText reads an unstructured profile source (a PDF resume or a
// plain text file) and returns cleaned text for structured extraction.
func ProfileText(path string) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw string
	var source string
	switch ext {
	case ".pdf":
		text, err := fetch.PDFText(path)
		if err != nil {
			return "", nil, err
		}
		raw = text
		source = "pdf"
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read profile file: %w", err)
		}
		raw = string(data)
		source = "file"
	}

	cleaned := CleanText(raw)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyContent, path)
	}

	return cleaned, NewMetadata(cleaned, "", source), nil
}
