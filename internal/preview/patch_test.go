package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elevateai/elevate-client/internal/analysis"
)

func TestApplyEdits_ReplacesOriginalText(t *testing.T) {
	html := "<li>Did things at work</li>"
	out := ApplyEdits(html, []analysis.Edit{{Original: "Did things at work", Enhanced: "Delivered measurable results"}})
	assert.Equal(t, "<li>Delivered measurable results</li>", out)
}

func TestApplyEdits_Idempotent(t *testing.T) {
	html := "<li>Did things</li><li>Managed team</li>"
	edits := []analysis.Edit{
		{Original: "Did things", Enhanced: "Delivered results"},
		{Original: "Managed team", Enhanced: "Led a team of 8"},
	}
	once := ApplyEdits(html, edits)
	twice := ApplyEdits(once, edits)
	assert.Equal(t, once, twice)
}

func TestApplyEdits_MetacharactersMatchedLiterally(t *testing.T) {
	html := "<li>Cut costs by 30% (est.)</li>"
	out := ApplyEdits(html, []analysis.Edit{{Original: "Cut costs by 30% (est.)", Enhanced: "Cut costs by 30%"}})
	assert.Equal(t, "<li>Cut costs by 30%</li>", out)
}

func TestApplyEdits_EnhancedTextInsertedLiterally(t *testing.T) {
	html := "<li>old</li>"
	out := ApplyEdits(html, []analysis.Edit{{Original: "old", Enhanced: "saved $1 and 50%"}})
	assert.Equal(t, "<li>saved $1 and 50%</li>", out)
}

func TestApplyEdits_NoMatchLeavesDocumentUnchanged(t *testing.T) {
	html := "<li>unrelated content</li>"
	out := ApplyEdits(html, []analysis.Edit{{Original: "Did things", Enhanced: "x"}})
	assert.Equal(t, html, out)
}

func TestApplyEdits_EmptyOriginalIgnored(t *testing.T) {
	html := "<li>content</li>"
	out := ApplyEdits(html, []analysis.Edit{{Original: "", Enhanced: "x"}})
	assert.Equal(t, html, out)
}

func TestApplyEdits_RepeatedOriginalReplacesAllOccurrences(t *testing.T) {
	html := "<li>Did things</li><li>Did things</li>"
	out := ApplyEdits(html, []analysis.Edit{{Original: "Did things", Enhanced: "Shipped"}})
	assert.Equal(t, "<li>Shipped</li><li>Shipped</li>", out)
}
