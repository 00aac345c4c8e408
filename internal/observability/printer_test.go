package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elevateai/elevate-client/internal/analysis"
	"github.com/elevateai/elevate-client/internal/api"
	"github.com/elevateai/elevate-client/internal/entitlement"
)

func render(fn func(p *Printer)) string {
	var buf bytes.Buffer
	fn(NewPrinter(&buf))
	return buf.String()
}

func TestScoreBar_Boundaries(t *testing.T) {
	assert.Contains(t, scoreBar(0), "  0/100")
	assert.Contains(t, scoreBar(100), "100/100")
	assert.NotContains(t, scoreBar(100), "·")
	assert.NotContains(t, scoreBar(0), "█")
}

func TestScoreBar_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, scoreBar(100), scoreBar(250))
	assert.Equal(t, scoreBar(0), scoreBar(-10))
}

func TestObscure_MatchesRuneLength(t *testing.T) {
	assert.Equal(t, "░░░░", obscure("Jane"))
	assert.Empty(t, obscure(""))
}

func TestPrintAnalysis_ShowsScoresAndSummary(t *testing.T) {
	result := &analysis.Result{
		ATSScore: 85, ImpactScore: 70, BrevityScore: 60, ActionVerbScore: 50,
		Summary: "Strong resume overall.",
	}
	out := render(func(p *Printer) { p.PrintAnalysis(result, entitlement.Gate{}) })
	assert.Contains(t, out, "Analysis Complete")
	assert.Contains(t, out, " 85/100")
	assert.Contains(t, out, "Strong resume overall.")
}

func TestPrintAnalysis_MissingKeywordsObscuredOnPartial(t *testing.T) {
	result := &analysis.Result{
		MissingKeywords: "Kubernetes",
		Partial:         true,
	}
	out := render(func(p *Printer) { p.PrintAnalysis(result, entitlement.Gate{Partial: true}) })
	assert.NotContains(t, out, "Kubernetes")
	assert.Contains(t, out, strings.Repeat("░", len("Kubernetes")))
	assert.Contains(t, out, "locked")
}

func TestPrintAnalysis_MissingKeywordsVisibleOnFullAnalysis(t *testing.T) {
	result := &analysis.Result{MissingKeywords: "Kubernetes, Terraform"}
	out := render(func(p *Printer) { p.PrintAnalysis(result, entitlement.Gate{}) })
	assert.Contains(t, out, "Kubernetes")
	assert.Contains(t, out, "Terraform")
}

func TestPrintAnalysis_LockedChecklistItemObscuredWithoutMarker(t *testing.T) {
	result := &analysis.Result{
		Improvements: "Add metrics\n[Locked] Tailor your summary",
	}
	out := render(func(p *Printer) { p.PrintAnalysis(result, entitlement.Gate{}) })
	assert.Contains(t, out, "[ ] Add metrics")
	assert.NotContains(t, out, "[Locked]")
	assert.NotContains(t, out, "Tailor your summary")
	assert.Contains(t, out, "[✦] "+strings.Repeat("░", len("Tailor your summary")))
}

func TestPrintAnalysis_PartialUpsellLine(t *testing.T) {
	result := &analysis.Result{Partial: true}
	out := render(func(p *Printer) { p.PrintAnalysis(result, entitlement.Gate{Partial: true}) })
	assert.Contains(t, out, "elevate upgrade")
}

func TestPrintProfile_FreePlanShowsRemainingScans(t *testing.T) {
	profile := &api.Profile{Name: "Jane Doe", Email: "jane@example.com", Provider: "google", ScansUsed: 1}
	out := render(func(p *Printer) { p.PrintProfile(profile, entitlement.Gate{ScansUsed: 1}) })
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "1 / 2 used (1 remaining)")
}

func TestPrintProfile_ProPlanUnmetered(t *testing.T) {
	profile := &api.Profile{Name: "Jane Doe", IsPro: true, ScansUsed: 50}
	out := render(func(p *Printer) { p.PrintProfile(profile, entitlement.Gate{Pro: true, ScansUsed: 50}) })
	assert.Contains(t, out, "Pro")
	assert.Contains(t, out, "unlimited")
	assert.NotContains(t, out, "remaining")
}

func TestPrintHistory_Empty(t *testing.T) {
	out := render(func(p *Printer) { p.PrintHistory(nil) })
	assert.Contains(t, out, "No resumes yet")
}

func TestPrintHistory_FallsBackForMissingFields(t *testing.T) {
	items := []api.HistoryItem{{ID: 7, ATSScore: 60}}
	out := render(func(p *Printer) { p.PrintHistory(items) })
	assert.Contains(t, out, "Resume #7")
	assert.Contains(t, out, "Recently analyzed")
}

func TestPrintQuestions_NumbersAndCategories(t *testing.T) {
	questions := []api.Question{
		{Question: "Tell me about a conflict", Tip: "Use STAR", Category: "Behavioural"},
		{Question: "Explain channels", Category: "Technical"},
	}
	out := render(func(p *Printer) { p.PrintQuestions(questions) })
	assert.Contains(t, out, "Question 1/2")
	assert.Contains(t, out, "Behavioural")
	assert.Contains(t, out, "Tip: Use STAR")
	assert.Contains(t, out, "Question 2/2")
}

func TestWrap_BreaksAtWordBoundaries(t *testing.T) {
	out := wrap("one two three four five", 9)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
	assert.Equal(t, "one two three four five", strings.Join(strings.Fields(out), " "))
}

func TestWrap_Empty(t *testing.T) {
	assert.Empty(t, wrap("   ", 10))
}
