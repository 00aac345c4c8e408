package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInterviewQuestions_ValidList(t *testing.T) {
	doc := `[
		{"question": "Tell me about a conflict", "tip": "Use STAR", "category": "Behavioural"},
		{"question": "Explain goroutine scheduling", "tip": "Mention GMP", "category": "Technical"},
		{"question": "Where do you see yourself in five years?", "tip": "Be honest", "category": "Career"}
	]`
	assert.NoError(t, ValidateInterviewQuestions(doc))
}

func TestValidateInterviewQuestions_EmptyListIsValid(t *testing.T) {
	assert.NoError(t, ValidateInterviewQuestions(`[]`))
}

func TestValidateInterviewQuestions_MissingTip(t *testing.T) {
	doc := `[{"question": "q", "category": "Technical"}]`
	assert.Error(t, ValidateInterviewQuestions(doc))
}

func TestValidateInterviewQuestions_UnknownCategory(t *testing.T) {
	doc := `[{"question": "q", "tip": "t", "category": "Random"}]`
	assert.Error(t, ValidateInterviewQuestions(doc))
}

func TestValidateInterviewQuestions_ExtraFieldRejected(t *testing.T) {
	doc := `[{"question": "q", "tip": "t", "category": "Career", "difficulty": "hard"}]`
	assert.Error(t, ValidateInterviewQuestions(doc))
}

func TestValidateInterviewQuestions_NotAnArray(t *testing.T) {
	assert.Error(t, ValidateInterviewQuestions(`{"question": "q"}`))
}

func TestValidateInterviewQuestions_ProseRejected(t *testing.T) {
	assert.Error(t, ValidateInterviewQuestions(`I'm sorry, I can't generate questions.`))
}

func TestValidateAnalysisResult_Valid(t *testing.T) {
	doc := `{
		"id": 7, "resumeId": 42,
		"atsScore": 85, "impactScore": 80, "brevityScore": 75, "actionVerbScore": 70,
		"summary": "Strong resume.",
		"strengths": "Clear structure",
		"missingKeywords": null,
		"isPartialAnalysis": true
	}`
	assert.NoError(t, ValidateAnalysisResult(doc))
}

func TestValidateAnalysisResult_OutOfRangeScoresAccepted(t *testing.T) {
	// Range enforcement happens at render time, not on the wire.
	doc := `{"id": 1, "resumeId": 2, "atsScore": 250, "impactScore": -10, "brevityScore": 0, "actionVerbScore": 0}`
	assert.NoError(t, ValidateAnalysisResult(doc))
}

func TestValidateAnalysisResult_MissingScores(t *testing.T) {
	err := ValidateAnalysisResult(`{"id": 1, "resumeId": 2}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidationError_ListsFieldPaths(t *testing.T) {
	err := ValidateInterviewQuestions(`[{"question": "", "tip": "t", "category": "Career"}]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
