// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/elevateai/elevate-client/internal/analysis"
	"github.com/elevateai/elevate-client/internal/api"
	"github.com/elevateai/elevate-client/internal/entitlement"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the width of score bars
	barWidth = 20
)

// Printer handles formatted output for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a clamped score as a fixed-width bar.
func scoreBar(score int) string {
	score = analysis.ClampScore(score)
	filled := score * barWidth / 100
	return fmt.Sprintf("[%s%s] %3d/100",
		strings.Repeat("█", filled), strings.Repeat("·", barWidth-filled), score)
}

// obscure masks gated text while keeping its length visible, the terminal
// analog of the blurred upsell overlay.
func obscure(text string) string {
	return strings.Repeat("░", len([]rune(text)))
}

// PrintAnalysis renders the full results dashboard, applying the entitlement
// gate's visibility decisions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAnalysis(result *analysis.Result, gate entitlement.Gate) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score        %s\n", scoreBar(result.ATSScore)))
	sb.WriteString(fmt.Sprintf("Impact Metrics   %s\n", scoreBar(result.ImpactScore)))
	sb.WriteString(fmt.Sprintf("Brevity          %s\n", scoreBar(result.BrevityScore)))
	sb.WriteString(fmt.Sprintf("Action Verbs     %s", scoreBar(result.ActionVerbScore)))
	p.printBox("Analysis Complete", sb.String())

	if summary := strings.TrimSpace(result.Summary); summary != "" {
		p.printBox("Executive Summary", wrap(summary, boxWidth-4))
	}

	p.printKeywords(result, gate)
	p.printList("Key Strengths", result.StrengthsList())
	p.printList("Areas for Improvement", result.WeaknessesList())
	p.printChecklist(result.ImprovementsList())

	if result.Partial {
		fmt.Fprintln(p.out, "Some results are locked on the free plan. Run `elevate upgrade` to unlock the full analysis.")
	}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printKeywords(result *analysis.Result, gate entitlement.Gate) {
	found := result.FoundKeywordsList()
	missing := result.MissingKeywordsList()
	if len(found) == 0 && len(missing) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("Found:\n")
	if len(found) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, kw := range found {
		sb.WriteString(fmt.Sprintf("  + %s\n", kw))
	}
	sb.WriteString("Missing:")
	if len(missing) == 0 {
		sb.WriteString("\n  (none)")
	}
	for _, kw := range missing {
		if gate.MissingKeywordsVisible() {
			sb.WriteString(fmt.Sprintf("\n  - %s", kw))
		} else {
			sb.WriteString(fmt.Sprintf("\n  - %s", obscure(kw)))
		}
	}
	p.printBox("Keyword Matcher", sb.String())
	if !gate.MissingKeywordsVisible() {
		fmt.Fprintln(p.out, "Missing keywords are locked. Run `elevate upgrade` to reveal them.")
	}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("• %s", item))
	}
	p.printBox(title, sb.String())
}

// printChecklist renders the fix-it checklist. Locked items show their text
// obscured with the marker stripped; they stay non-interactive until
// upgrade.
func (p *Printer) printChecklist(items []string) {
	if len(items) == 0 {
		return
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		text := entitlement.DisplayText(item)
		if entitlement.ItemLocked(item) {
			sb.WriteString(fmt.Sprintf("[✦] %s", obscure(text)))
		} else {
			sb.WriteString(fmt.Sprintf("[ ] %s", text))
		}
	}
	p.printBox("Actionable Fix-It Checklist", sb.String())
}

// PrintProfile renders the account screen.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProfile(profile *api.Profile, gate entitlement.Gate) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name      %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email     %s\n", profile.Email))
	sb.WriteString(fmt.Sprintf("Provider  %s\n", profile.Provider))
	if profile.IsPro {
		sb.WriteString("Plan      ElevateAI Pro (unlimited scans)\n")
		sb.WriteString("Scans     unlimited\n")
	} else {
		sb.WriteString("Plan      Free\n")
		sb.WriteString(fmt.Sprintf("Scans     %d / %d used (%d remaining)\n",
			profile.ScansUsed, entitlement.FreeScanLimit, gate.ScansLeft()))
	}
	sb.WriteString(fmt.Sprintf("Resumes   %d uploaded", profile.ResumeCount))
	p.printBox("My Profile", sb.String())
}

// PrintHistory renders the past-resume list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(items []api.HistoryItem) {
	if len(items) == 0 {
		fmt.Fprintln(p.out, "No resumes yet. Run `elevate scan` to analyze your first resume.")
		return
	}
	var sb strings.Builder
	for i, item := range items {
		name := item.FileName
		if name == "" {
			name = fmt.Sprintf("Resume #%d", item.ID)
		}
		created := item.CreatedAt
		if created == "" {
			created = "Recently analyzed"
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%-30s %3d%% ATS  %s", name, analysis.ClampScore(item.ATSScore), created))
	}
	p.printBox("Resume History", sb.String())
}

// PrintQuestions renders generated interview questions as flashcards.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintQuestions(questions []api.Question) {
	for i, q := range questions {
		var sb strings.Builder
		sb.WriteString(wrap(q.Question, boxWidth-4))
		if q.Tip != "" {
			sb.WriteString("\n\nTip: ")
			sb.WriteString(wrap(q.Tip, boxWidth-4))
		}
		p.printBox(fmt.Sprintf("Question %d/%d (%s)", i+1, len(questions), q.Category), sb.String())
	}
}

// wrap breaks text at word boundaries to fit the box width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				sb.WriteString("\n")
				lineLen = 0
			} else {
				sb.WriteString(" ")
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
