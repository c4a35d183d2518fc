// Package llm - extractor.go provides schema-guided structured extraction.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/resumeflow/resumeflow/internal/schema"
)

// ExtractInput describes a single structured extraction request.
type ExtractInput struct {
	Text       string            // Source text to extract from
	Schema     schema.Descriptor // Expected output structure
	Persona    string            // System preamble establishing the model's role
	TaskPrompt string            // Task-specific instructions
	LongOutput bool              // Raise the output token ceiling for large documents
}

// BuildExtractionPrompt constructs the full prompt for an extraction request:
// persona, task, format instructions derived from the schema, then the
// delimited source text.
func BuildExtractionPrompt(in ExtractInput) string {
	var sb strings.Builder

	if in.Persona != "" {
		sb.WriteString(in.Persona)
		sb.WriteString("\n\n")
	}
	if in.TaskPrompt != "" {
		sb.WriteString(in.TaskPrompt)
		sb.WriteString("\n\n")
	}

	sb.WriteString(in.Schema.FormatInstructions())
	sb.WriteString("\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent facts.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Prompts that carry their own embedded inputs pass an empty Text.
	if in.Text != "" {
		sb.WriteString("Input text:\n\"\"\"\n")
		sb.WriteString(in.Text)
		sb.WriteString("\n\"\"\"\n")
	}

	return sb.String()
}

// Extract performs a single model call and validates the response against
// the schema. There is no retry: each failure phase surfaces a distinct
// error type so callers can tell a transport failure from bad model output.
//
// On a schema violation the parsed payload is still returned alongside the
// error, so callers that tolerate partial documents can proceed.
func Extract(ctx context.Context, client Client, in ExtractInput) (json.RawMessage, error) {
	doc := in.Schema.Name

	prompt := BuildExtractionPrompt(in)

	raw, err := client.GenerateJSON(ctx, prompt, in.LongOutput)
	if err != nil {
		return nil, &BackendError{
			Doc:     doc,
			Message: "generation failed",
			Cause:   err,
		}
	}

	cleaned := CleanJSONBlock(raw)
	if !json.Valid([]byte(cleaned)) {
		return nil, &MalformedOutputError{
			Doc:     doc,
			Output:  raw,
			Message: "response is not valid JSON",
		}
	}

	// Re-encode compactly so downstream artifacts are stable regardless of
	// model whitespace.
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(cleaned)); err != nil {
		return nil, &MalformedOutputError{
			Doc:     doc,
			Output:  raw,
			Message: "response could not be compacted",
			Cause:   err,
		}
	}
	payload := json.RawMessage(buf.Bytes())

	if err := in.Schema.Validate(payload); err != nil {
		var verr *schema.ViolationError
		if errors.As(err, &verr) {
			return payload, &SchemaViolationError{
				Doc:     doc,
				Payload: payload,
				Cause:   verr,
			}
		}
		return nil, &BackendError{
			Doc:     doc,
			Message: fmt.Sprintf("schema check failed for %s", doc),
			Cause:   err,
		}
	}

	return payload, nil
}
