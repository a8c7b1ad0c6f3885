package invitecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code, err := Generate()

	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateN(t *testing.T) {
	t.Run("honors requested length", func(t *testing.T) {
		for _, n := range []int{1, 8, 32} {
			code, err := GenerateN(n)

			require.NoError(t, err)
			assert.Len(t, code, n)
		}
	})

	t.Run("returns empty code for zero length", func(t *testing.T) {
		code, err := GenerateN(0)

		require.NoError(t, err)
		assert.Empty(t, code)
	})
}

func TestGenerateProducesDistinctCodes(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)

		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
