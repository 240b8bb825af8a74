package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
	require.NoError(t, err)

	// Verify it implements the interface
	var _ copypasta.TokenCounter = tc

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		count, err := tc.CountTokens(ctx, "Hello, world!")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		count, err := tc.CountTokens(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("longer text returns more tokens", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		shortCount, err := tc.CountTokens(ctx, "Summarize")
		require.NoError(t, err)

		longCount, err := tc.CountTokens(ctx, "Summarize this text in bullet points, keeping every number and name that appears in the original page.")
		require.NoError(t, err)

		assert.Greater(t, longCount, shortCount)
	})
}

func TestTokenizerModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		model string
		want  string
	}{
		{"", gemini.DefaultModel},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
		{"google/gemini-2.5-pro", "gemini-2.5-pro"},
		{"google/Gemini-2.0-Flash:free", "gemini-2.0-flash"},
		{"meta-llama/llama-3-8b-instruct:free", gemini.DefaultModel},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gemini.TokenizerModel(tt.model))
		})
	}
}

func TestNewTokenCounter_FallsBackForUnknownModel(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter("meta-llama/llama-3-8b-instruct:free")

	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, tc.Model())
}

func TestTokenCounter_CountTokens_Canceled(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = tc.CountTokens(ctx, "Hello")
	require.ErrorIs(t, err, context.Canceled)
}
