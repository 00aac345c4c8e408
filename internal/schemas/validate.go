// Package schemas validates structured backend payloads against JSON Schemas
// before the client trusts their shape.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// interviewQuestionsSchema describes the double-encoded question list served
// by the interview-questions endpoint after its outer unwrap.
const interviewQuestionsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["question", "tip", "category"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "tip": {"type": "string"},
      "category": {"type": "string", "enum": ["Behavioural", "Technical", "Career"]}
    },
    "additionalProperties": false
  }
}`

// analysisResultSchema describes the analyze endpoint response. Scores are
// deliberately unbounded here; out-of-range values are accepted on the wire
// and clamped at render time.
const analysisResultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "resumeId", "atsScore", "impactScore", "brevityScore", "actionVerbScore"],
  "properties": {
    "id": {"type": "integer"},
    "resumeId": {"type": "integer"},
    "atsScore": {"type": "integer"},
    "impactScore": {"type": "integer"},
    "brevityScore": {"type": "integer"},
    "actionVerbScore": {"type": "integer"},
    "summary": {"type": "string"},
    "strengths": {"type": ["string", "null"]},
    "weaknesses": {"type": ["string", "null"]},
    "suggestedImprovements": {"type": ["string", "null"]},
    "foundKeywords": {"type": ["string", "null"]},
    "missingKeywords": {"type": ["string", "null"]},
    "isPartialAnalysis": {"type": "boolean"}
  }
}`

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateInterviewQuestions checks the inner question-list JSON document.
func ValidateInterviewQuestions(document string) error {
	return validate(interviewQuestionsSchema, document)
}

// ValidateAnalysisResult checks a raw analyze response document.
func ValidateAnalysisResult(document string) error {
	return validate(analysisResultSchema, document)
}

func validate(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
