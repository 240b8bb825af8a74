package copypasta_test

import (
	"testing"

	"github.com/fwojciec/copypasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoID(t *testing.T) {
	t.Parallel()

	t.Run("extracts id from short link", func(t *testing.T) {
		t.Parallel()

		id, ok := copypasta.VideoID("https://youtu.be/dQw4w9WgXcQ")

		require.True(t, ok)
		assert.Equal(t, "dQw4w9WgXcQ", id)
	})

	t.Run("extracts id from watch URL", func(t *testing.T) {
		t.Parallel()

		id, ok := copypasta.VideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s")

		require.True(t, ok)
		assert.Equal(t, "dQw4w9WgXcQ", id)
	})

	t.Run("extracts id from shorts URL", func(t *testing.T) {
		t.Parallel()

		id, ok := copypasta.VideoID("https://youtube.com/shorts/abcdefghijk")

		require.True(t, ok)
		assert.Equal(t, "abcdefghijk", id)
	})

	t.Run("extracts id from embed URL without scheme", func(t *testing.T) {
		t.Parallel()

		id, ok := copypasta.VideoID("youtube.com/embed/A_b-C_d-E_f")

		require.True(t, ok)
		assert.Equal(t, "A_b-C_d-E_f", id)
	})

	t.Run("falls back to v query parameter", func(t *testing.T) {
		t.Parallel()

		id, ok := copypasta.VideoID("https://m.youtube.com/watch?feature=share&v=short")

		require.True(t, ok)
		assert.Equal(t, "short", id)
	})

	t.Run("ignores v parameter on other hosts", func(t *testing.T) {
		t.Parallel()

		_, ok := copypasta.VideoID("https://example.com/article?v=2")

		assert.False(t, ok)
	})

	t.Run("returns false for ordinary pages", func(t *testing.T) {
		t.Parallel()

		_, ok := copypasta.VideoID("https://example.com/pdf-report.pdf")

		assert.False(t, ok)
	})
}

func TestKindFromContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, copypasta.SourcePDF, copypasta.KindFromContentType("application/pdf"))
	assert.Equal(t, copypasta.SourcePDF, copypasta.KindFromContentType("Application/PDF; charset=binary"))
	assert.Equal(t, copypasta.SourceImage, copypasta.KindFromContentType("image/png"))
	assert.Equal(t, copypasta.SourceWeb, copypasta.KindFromContentType("text/html; charset=utf-8"))
	assert.Equal(t, copypasta.SourceWeb, copypasta.KindFromContentType(""))
}

func TestKindFromUploadType(t *testing.T) {
	t.Parallel()

	t.Run("accepts extensions and MIME types", func(t *testing.T) {
		t.Parallel()

		for declared, want := range map[string]copypasta.SourceKind{
			"pdf":             copypasta.SourcePDF,
			".PDF":            copypasta.SourcePDF,
			"application/pdf": copypasta.SourcePDF,
			"jpg":             copypasta.SourceImage,
			"jpeg":            copypasta.SourceImage,
			"png":             copypasta.SourceImage,
			"image/png":       copypasta.SourceImage,
		} {
			got, err := copypasta.KindFromUploadType(declared)
			require.NoError(t, err, declared)
			assert.Equal(t, want, got, declared)
		}
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		t.Parallel()

		_, err := copypasta.KindFromUploadType("gif")

		require.Error(t, err)
		assert.Equal(t, copypasta.EINVALID, copypasta.ErrorCode(err))
	})
}

func TestNeedsOCR(t *testing.T) {
	t.Parallel()

	assert.True(t, copypasta.NeedsOCR(""))
	assert.True(t, copypasta.NeedsOCR("  \n\t "))
	assert.True(t, copypasta.NeedsOCR(" x "))
	assert.False(t, copypasta.NeedsOCR("ok"))
	assert.False(t, copypasta.NeedsOCR("  é1 "))
}
