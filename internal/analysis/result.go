// Package analysis holds the client-side model of an ATS analysis result.
//
// The backend is authoritative for every value here; this package only
// parses the wire shapes defensively and never persists anything.
package analysis

import "strings"

// Result is the analysis payload returned by the analyze endpoint. The three
// advice fields are newline-delimited free text and the two keyword fields
// are comma-delimited; use the list accessors rather than splitting by hand.
type Result struct {
	ID              int64  `json:"id"`
	ResumeID        int64  `json:"resumeId"`
	ATSScore        int    `json:"atsScore"`
	ImpactScore     int    `json:"impactScore"`
	BrevityScore    int    `json:"brevityScore"`
	ActionVerbScore int    `json:"actionVerbScore"`
	Summary         string `json:"summary"`
	Strengths       string `json:"strengths"`
	Weaknesses      string `json:"weaknesses"`
	Improvements    string `json:"suggestedImprovements"`
	FoundKeywords   string `json:"foundKeywords,omitempty"`
	MissingKeywords string `json:"missingKeywords,omitempty"`
	Partial         bool   `json:"isPartialAnalysis,omitempty"`
}

// ClampScore forces a score into [0, 100]. Out-of-range values from the
// server are displayed clamped, never raw.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// SplitList parses a delimited free-text field into clean entries: blank and
// whitespace-only input yields an empty list, entries are trimmed, and a
// leading "- " bullet marker is stripped.
func SplitList(text, delimiter string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, delimiter)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		part = strings.TrimSpace(strings.TrimPrefix(part, "- "))
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// StrengthsList returns the parsed strengths entries.
func (r *Result) StrengthsList() []string { return SplitList(r.Strengths, "\n") }

// WeaknessesList returns the parsed weaknesses entries.
func (r *Result) WeaknessesList() []string { return SplitList(r.Weaknesses, "\n") }

// ImprovementsList returns the parsed fix-it checklist entries. Locked-item
// markers are preserved; display handling belongs to the entitlement gate.
func (r *Result) ImprovementsList() []string { return SplitList(r.Improvements, "\n") }

// FoundKeywordsList returns the parsed found-keyword entries.
func (r *Result) FoundKeywordsList() []string { return SplitList(r.FoundKeywords, ",") }

// MissingKeywordsList returns the parsed missing-keyword entries.
func (r *Result) MissingKeywordsList() []string { return SplitList(r.MissingKeywords, ",") }

// Scores returns the four sub-scores clamped for display, in dashboard order:
// ATS, impact, brevity, action verbs.
func (r *Result) Scores() [4]int {
	return [4]int{
		ClampScore(r.ATSScore),
		ClampScore(r.ImpactScore),
		ClampScore(r.BrevityScore),
		ClampScore(r.ActionVerbScore),
	}
}
