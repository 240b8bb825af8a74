package goquery_test

import (
	"testing"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers article over body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><p>Menu</p></nav>
<article><p>Hello   world</p><p>Second</p></article>
</body></html>`

		text, err := goquery.NewExtractor().Extract([]byte(html), "text/html")

		require.NoError(t, err)
		assert.Equal(t, "Hello world Second", text)
	})

	t.Run("collapses unicode space runs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>alpha&nbsp;&nbsp;&nbsp;beta&#x2003;&#x2003;gamma</p></article></body></html>`

		text, err := goquery.NewExtractor().Extract([]byte(html), "text/html; charset=utf-8")

		require.NoError(t, err)
		assert.Equal(t, "alpha beta gamma", text)
	})

	t.Run("uses main-content div when no article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Sidebar</p>
<div class="main-content"><p>Body text</p></div>
</body></html>`

		text, err := goquery.NewExtractor().Extract([]byte(html), "text/html")

		require.NoError(t, err)
		assert.Equal(t, "Body text", text)
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Only <b>paragraph</b></p></body></html>`

		text, err := goquery.NewExtractor().Extract([]byte(html), "text/html")

		require.NoError(t, err)
		assert.Equal(t, "Only paragraph", text)
	})

	t.Run("nested blocks repeat their text", func(t *testing.T) {
		t.Parallel()

		html := `<article><div><p>Inner</p></div></article>`

		text, err := goquery.NewExtractor().Extract([]byte(html), "text/html")

		require.NoError(t, err)
		assert.Equal(t, "Inner Inner", text)
	})

	t.Run("skips script and style", func(t *testing.T) {
		t.Parallel()

		html := `<article><div>Text<script>var x = 1;</script><style>p{}</style></div></article>`

		text, err := goquery.NewExtractor().Extract([]byte(html), "text/html")

		require.NoError(t, err)
		assert.Equal(t, "Text", text)
	})

	t.Run("container without blocks yields empty text", func(t *testing.T) {
		t.Parallel()

		html := `<article><span>loose</span></article>`

		text, err := goquery.NewExtractor().Extract([]byte(html), "text/html")

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("returns no content for empty document", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract([]byte("   "), "text/html")

		require.Error(t, err)
		assert.Equal(t, copypasta.ENOCONTENT, copypasta.ErrorCode(err))
		assert.Equal(t, copypasta.NoMainBodyText, copypasta.ErrorMessage(err))
	})

	t.Run("decodes declared charset", func(t *testing.T) {
		t.Parallel()

		// "café" in ISO-8859-1
		page := append([]byte("<article><p>caf"), 0xe9, '<', '/', 'p', '>')

		text, err := goquery.NewExtractor().Extract(page, "text/html; charset=iso-8859-1")

		require.NoError(t, err)
		assert.Equal(t, "café", text)
	})

	t.Run("honors custom containers", func(t *testing.T) {
		t.Parallel()

		html := `<body><main><p>Main</p></main><p>Other</p></body>`
		e := &goquery.Extractor{Containers: []string{"main"}}

		text, err := e.Extract([]byte(html), "")

		require.NoError(t, err)
		assert.Equal(t, "Main", text)
	})
}
