package preview

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// activeContentSelector matches nodes that can execute or embed active
// content. The preview HTML comes from the server for sandboxed rendering
// only, so everything active is stripped before the document reaches a
// rendering surface.
const activeContentSelector = "script, iframe, object, embed, form, link[rel='import']"

// Sanitize removes active content and inline event handlers from a preview
// document.
func Sanitize(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse preview HTML: %w", err)
	}

	doc.Find(activeContentSelector).Remove()

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			kept := node.Attr[:0]
			for _, attr := range node.Attr {
				name := strings.ToLower(attr.Key)
				if strings.HasPrefix(name, "on") {
					continue
				}
				if (name == "href" || name == "src") &&
					strings.HasPrefix(strings.ToLower(strings.TrimSpace(attr.Val)), "javascript:") {
					continue
				}
				kept = append(kept, attr)
			}
			node.Attr = kept
		}
	})

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize preview HTML: %w", err)
	}
	return out, nil
}

// ExtractText returns the readable text of a preview document for terminal
// display, with blank lines collapsed.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse preview HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
