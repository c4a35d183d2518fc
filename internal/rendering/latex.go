package rendering

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/resumeflow/resumeflow/internal/types"
)

//go:embed resume.tmpl.tex
var defaultTemplate string

// Template delimiters. Go's default {{ }} delimiters collide with LaTeX
// braces, so templates use << >> instead.
const (
	delimLeft  = "<<"
	delimRight = ">>"
)

// Render produces LaTeX source for a tailored resume. All string values
// are LaTeX-escaped before the template runs. An empty templatePath
// selects the embedded default template.
func Render(resume *types.Resume, templatePath string) (string, error) {
	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	data, err := resumeData(resume)
	if err != nil {
		return "", &RenderError{
			Message: "failed to prepare template data",
			Cause:   err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// resumeData round-trips the resume through JSON so the template sees
// wire-format keys, then escapes every string value.
func resumeData(resume *types.Resume) (map[string]any, error) {
	raw, err := json.Marshal(resume)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	escaped, ok := EscapeValue(data).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected escaped data shape")
	}
	return escaped, nil
}

func loadTemplate(templatePath string) (*template.Template, error) {
	content := defaultTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(raw)
	}

	tmpl, err := template.New("resume").
		Delims(delimLeft, delimRight).
		Funcs(template.FuncMap{
			"join": joinStrings,
		}).
		Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// joinStrings joins a decoded JSON list with a separator.
func joinStrings(items []any, sep string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			parts = append(parts, s)
		} else {
			parts = append(parts, fmt.Sprint(item))
		}
	}
	return strings.Join(parts, sep)
}
