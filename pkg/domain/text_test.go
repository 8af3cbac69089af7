package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tender/pkg/validation"
)

func TestNewNonEmptyString(t *testing.T) {
	t.Run("rejects blank input", func(t *testing.T) {
		_, err := NewNonEmptyString("name", "")
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleShape))
	})

	t.Run("rejects whitespace-only input", func(t *testing.T) {
		_, err := NewNonEmptyString("name", "   \t ")
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleShape))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		s, err := NewNonEmptyString("name", "  Ada Lovelace  ")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", s.String())
	})

	t.Run("enforces configured minimum after trimming", func(t *testing.T) {
		_, err := NewNonEmptyString("name", "  ab  ", MinLength(3))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3")

		s, err := NewNonEmptyString("name", "abc", MinLength(3))
		require.NoError(t, err)
		assert.Equal(t, "abc", s.String())
	})
}

func TestNewEmailAddress(t *testing.T) {
	t.Run("rejects blank input", func(t *testing.T) {
		_, err := NewEmailAddress("email", "   ")
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleShape))
	})

	t.Run("rejects input without an at sign", func(t *testing.T) {
		_, err := NewEmailAddress("email", "ada.example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'@'")
	})

	t.Run("accepts any non-blank input containing an at sign", func(t *testing.T) {
		// The shape check is intentionally minimal; these are all accepted.
		for _, raw := range []string{"ada@example.com", "a@b", "@", "x@@y"} {
			e, err := NewEmailAddress("email", raw)
			require.NoError(t, err, "input %q", raw)
			assert.Equal(t, raw, e.String())
		}
	})
}
