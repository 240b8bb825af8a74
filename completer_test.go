package copypasta_test

import (
	"testing"

	"github.com/fwojciec/copypasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleResponses(t *testing.T) {
	t.Parallel()

	t.Run("labels pages and separates entries", func(t *testing.T) {
		t.Parallel()

		out := copypasta.AssembleResponses([]copypasta.LLMResponse{
			{Index: 0, Text: "first"},
			{Index: 1, Text: "second"},
		})

		assert.Equal(t, "\n\n# Page 1\nfirst\n\n---\n\n\n\n# Page 2\nsecond", out)
	})

	t.Run("single response has no separator", func(t *testing.T) {
		t.Parallel()

		out := copypasta.AssembleResponses([]copypasta.LLMResponse{{Index: 0, Text: "only"}})

		assert.Equal(t, "\n\n# Page 1\nonly", out)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, copypasta.AssembleResponses(nil))
	})
}

func TestNewCredentialPool(t *testing.T) {
	t.Parallel()

	pool := copypasta.NewCredentialPool([]string{"primary", "", "backup"}, []string{"k1", " ", "k3"})

	require.Len(t, pool, 2)
	assert.Equal(t, copypasta.Credential{Slot: 0, Name: "primary", Key: "k1"}, pool[0])
	assert.Equal(t, copypasta.Credential{Slot: 1, Name: "backup", Key: "k3"}, pool[1])
	assert.Equal(t, "backup", pool[1].String())
	assert.Equal(t, "slot-3", copypasta.Credential{Slot: 3, Key: "secret"}.String())
}
