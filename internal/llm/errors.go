// Package llm - errors.go defines typed errors for each extraction phase.
package llm

import (
	"fmt"

	"github.com/resumeflow/resumeflow/internal/schema"
)

// BackendError represents a failure in the underlying model call.
type BackendError struct {
	Doc     string
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm backend error for %s: %s: %v", e.Doc, e.Message, e.Cause)
	}
	return fmt.Sprintf("llm backend error for %s: %s", e.Doc, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// MalformedOutputError represents model output that is not parseable JSON
// even after code-fence stripping.
type MalformedOutputError struct {
	Doc     string
	Output  string
	Message string
	Cause   error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed output for %s: %s: %v", e.Doc, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed output for %s: %s", e.Doc, e.Message)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// SchemaViolationError represents parseable JSON that does not conform to
// the expected schema. Payload carries the parsed document so callers can
// inspect or salvage it.
type SchemaViolationError struct {
	Doc     string
	Payload []byte
	Cause   *schema.ViolationError
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation for %s: %v", e.Doc, e.Cause)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}
