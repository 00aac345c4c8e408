package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_RemovesScriptTags(t *testing.T) {
	out, err := Sanitize(`<html><body><p>resume</p><script>alert(1)</script></body></html>`)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "<p>resume</p>")
}

func TestSanitize_RemovesEmbeddedFrames(t *testing.T) {
	out, err := Sanitize(`<body><iframe src="https://evil.example"></iframe><object data="x"></object><embed src="y"></body>`)
	require.NoError(t, err)
	assert.NotContains(t, out, "<iframe")
	assert.NotContains(t, out, "<object")
	assert.NotContains(t, out, "<embed")
}

func TestSanitize_StripsEventHandlerAttributes(t *testing.T) {
	out, err := Sanitize(`<body><div onclick="steal()" onmouseover="x()" class="section">Experience</div></body>`)
	require.NoError(t, err)
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "onmouseover")
	assert.Contains(t, out, `class="section"`)
}

func TestSanitize_StripsJavascriptURLs(t *testing.T) {
	out, err := Sanitize(`<body><a href="javascript:alert(1)">link</a><a href="https://ok.example">ok</a></body>`)
	require.NoError(t, err)
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `href="https://ok.example"`)
}

func TestSanitize_PreservesDocumentContent(t *testing.T) {
	out, err := Sanitize(`<body><h1>Jane Doe</h1><ul><li>Led a team of 8</li></ul></body>`)
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Jane Doe</h1>")
	assert.Contains(t, out, "<li>Led a team of 8</li>")
}

func TestExtractText_StripsMarkupAndBlankLines(t *testing.T) {
	html := `<body>
		<style>h1 { color: red; }</style>
		<h1>Jane Doe</h1>

		<p>Senior Engineer</p>
	</body>`
	text, err := ExtractText(html)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Engineer", text)
	assert.NotContains(t, text, "color")
}
