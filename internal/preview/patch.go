// Package preview keeps a rendered resume document in sync with the user's
// template, font, and applied AI edits.
package preview

import (
	"regexp"

	"github.com/elevateai/elevate-client/internal/analysis"
)

// ApplyEdits applies every accepted rewrite as a global literal substitution
// against the fetched HTML. Metacharacters in the original text are escaped
// before matching, and the enhanced text is inserted literally, so the patch
// step is pure text replacement with no pattern semantics leaking through.
//
// Applying the same edit list to the same input always yields the same
// output; there is no hidden state. If an original recurs in the document,
// every occurrence is replaced, a known limitation of text-level patching.
func ApplyEdits(html string, edits []analysis.Edit) string {
	for _, edit := range edits {
		if edit.Original == "" {
			continue
		}
		pattern := regexp.MustCompile(regexp.QuoteMeta(edit.Original))
		html = pattern.ReplaceAllLiteralString(html, edit.Enhanced)
	}
	return html
}
