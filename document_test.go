package copypasta_test

import (
	"testing"

	"github.com/fwojciec/copypasta"
	"github.com/stretchr/testify/assert"
)

func TestExtractedDocument_Freeze(t *testing.T) {
	t.Parallel()

	t.Run("sets text and stable content hash", func(t *testing.T) {
		t.Parallel()

		a := (&copypasta.ExtractedDocument{}).Freeze("hello")
		b := (&copypasta.ExtractedDocument{}).Freeze("hello")
		c := (&copypasta.ExtractedDocument{}).Freeze("world")

		assert.Equal(t, "hello", a.Text)
		assert.Len(t, a.ContentHash, 16)
		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})

	t.Run("records warnings in order", func(t *testing.T) {
		t.Parallel()

		doc := &copypasta.ExtractedDocument{}
		doc.Warnf("page %d: ocr failed", 4)
		doc.Warnf("page %d: ocr failed", 5)

		assert.Equal(t, []string{"page 4: ocr failed", "page 5: ocr failed"}, doc.Warnings)
	})
}
