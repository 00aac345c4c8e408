package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampScore_InRange(t *testing.T) {
	assert.Equal(t, 85, ClampScore(85))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 100, ClampScore(100))
}

func TestClampScore_Negative(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
}

func TestClampScore_AboveHundred(t *testing.T) {
	assert.Equal(t, 100, ClampScore(250))
}

func TestSplitList_Empty(t *testing.T) {
	assert.Empty(t, SplitList("", "\n"))
}

func TestSplitList_WhitespaceOnly(t *testing.T) {
	assert.Empty(t, SplitList("   \n\t  ", "\n"))
}

func TestSplitList_TrimsEntries(t *testing.T) {
	items := SplitList("  first  \n  second  ", "\n")
	assert.Equal(t, []string{"first", "second"}, items)
}

func TestSplitList_StripsBulletMarkers(t *testing.T) {
	items := SplitList("- Quantify achievements\n- Add a skills section", "\n")
	assert.Equal(t, []string{"Quantify achievements", "Add a skills section"}, items)
}

func TestSplitList_DropsBlankEntries(t *testing.T) {
	items := SplitList("first\n\n\nsecond\n", "\n")
	assert.Equal(t, []string{"first", "second"}, items)
}

func TestSplitList_CommaDelimited(t *testing.T) {
	items := SplitList("Go, Kubernetes ,Terraform", ",")
	assert.Equal(t, []string{"Go", "Kubernetes", "Terraform"}, items)
}

func TestResult_KeywordAccessors(t *testing.T) {
	r := &Result{
		FoundKeywords:   "Go, SQL",
		MissingKeywords: "Kubernetes, Terraform",
	}
	assert.Equal(t, []string{"Go", "SQL"}, r.FoundKeywordsList())
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, r.MissingKeywordsList())
}

func TestResult_ImprovementsPreserveLockedMarker(t *testing.T) {
	r := &Result{Improvements: "Add metrics\n[Locked] Tailor your summary"}
	items := r.ImprovementsList()
	require.Len(t, items, 2)
	assert.Equal(t, "[Locked] Tailor your summary", items[1])
}

func TestResult_ScoresClamped(t *testing.T) {
	r := &Result{ATSScore: 85, ImpactScore: -10, BrevityScore: 130, ActionVerbScore: 70}
	assert.Equal(t, [4]int{85, 0, 100, 70}, r.Scores())
}

func TestResult_DecodesWireShape(t *testing.T) {
	raw := `{
		"id": 7,
		"resumeId": 42,
		"atsScore": 85,
		"summary": "Strong resume overall.",
		"strengths": "Clear structure\nGood verbs",
		"suggestedImprovements": "- Add metrics",
		"missingKeywords": "Kubernetes",
		"isPartialAnalysis": true
	}`
	var r Result
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.Equal(t, int64(42), r.ResumeID)
	assert.Equal(t, 85, r.ATSScore)
	assert.True(t, r.Partial)
	assert.Equal(t, []string{"Clear structure", "Good verbs"}, r.StrengthsList())
	assert.Equal(t, []string{"Add metrics"}, r.ImprovementsList())
}
