// Package schema declares the structured shapes the generation backend
// must produce: job details, the six resume sections, and the full
// resume. Each descriptor can render machine-readable format
// instructions for a prompt and validate a parsed payload against its
// required/optional field set.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Field type hints used in format instructions and schema derivation.
const (
	TypeString     = "string"
	TypeStringList = "[]string"
	TypeObject     = "object"
	TypeObjectList = "[]object"
)

// Field describes a single field of a structured extraction target.
// Properties holds the sub-fields for object and []object types.
type Field struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Properties  []Field
}

// Descriptor describes the full shape of an extraction target.
type Descriptor struct {
	Name        string
	Description string
	Fields      []Field
}

// FormatInstructions renders the descriptor as a prompt block the model
// can follow: field names, type hints, and per-field descriptions.
func (d Descriptor) FormatInstructions() string {
	var sb strings.Builder
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	writeFields(&sb, d.Fields, 1)
	sb.WriteString("\nIMPORTANT:\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")
	sb.WriteString("- Omit optional fields you cannot fill; never invent values.\n")
	return sb.String()
}

func writeFields(sb *strings.Builder, fields []Field, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(strings.Repeat("  ", depth-1) + "{\n")
	for i, f := range fields {
		requiredHint := ""
		if f.Required {
			requiredHint = " (required)"
		}
		switch f.Type {
		case TypeObject:
			fmt.Fprintf(sb, "%s%q:%s // %s\n", indent, f.Name, requiredHint, f.Description)
			writeFields(sb, f.Properties, depth+1)
		case TypeObjectList:
			fmt.Fprintf(sb, "%s%q: [%s // list of %s\n", indent, f.Name, requiredHint, f.Description)
			writeFields(sb, f.Properties, depth+1)
			sb.WriteString(indent + "]\n")
		default:
			fmt.Fprintf(sb, "%s%q: %s%s // %s", indent, f.Name, f.Type, requiredHint, f.Description)
			if i < len(fields)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString(strings.Repeat("  ", depth-1) + "}\n")
}

// JSONSchema derives a JSON Schema document from the descriptor.
// Optional fields are nullable; required fields appear in "required".
func (d Descriptor) JSONSchema() (map[string]any, error) {
	return objectSchema(d.Fields)
}

func objectSchema(fields []Field) (map[string]any, error) {
	properties := make(map[string]any, len(fields))
	var required []string
	for _, f := range fields {
		prop, err := fieldSchema(f)
		if err != nil {
			return nil, err
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema, nil
}

func fieldSchema(f Field) (map[string]any, error) {
	switch f.Type {
	case TypeString:
		if f.Required {
			return map[string]any{"type": "string"}, nil
		}
		return map[string]any{"type": []string{"string", "null"}}, nil
	case TypeStringList:
		return map[string]any{
			"type":  listType(f.Required),
			"items": map[string]any{"type": "string"},
		}, nil
	case TypeObject:
		obj, err := objectSchema(f.Properties)
		if err != nil {
			return nil, err
		}
		if !f.Required {
			obj["type"] = []string{"object", "null"}
		}
		return obj, nil
	case TypeObjectList:
		items, err := objectSchema(f.Properties)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":  listType(f.Required),
			"items": items,
		}, nil
	default:
		return nil, fmt.Errorf("field %s: unknown type hint %q", f.Name, f.Type)
	}
}

func listType(required bool) any {
	if required {
		return "array"
	}
	return []string{"array", "null"}
}

// FieldError is a single validation failure at a field path.
type FieldError struct {
	Field   string
	Message string
}

// ViolationError reports a payload that parsed but does not conform to
// the descriptor's required/optional field set.
type ViolationError struct {
	Schema string
	Errors []FieldError
}

func (e *ViolationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "payload violates schema %s:", e.Schema)
	for _, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// Validate checks a parsed JSON payload against the descriptor.
// Returns *ViolationError when the payload does not conform.
func (d Descriptor) Validate(payload []byte) error {
	schemaDoc, err := d.JSONSchema()
	if err != nil {
		return fmt.Errorf("derive schema %s: %w", d.Name, err)
	}
	schemaJSON, err := json.Marshal(schemaDoc)
	if err != nil {
		return fmt.Errorf("marshal schema %s: %w", d.Name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("validate against schema %s: %w", d.Name, err)
	}
	if result.Valid() {
		return nil
	}

	violation := &ViolationError{Schema: d.Name}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		violation.Errors = append(violation.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return violation
}
