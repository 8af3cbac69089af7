package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tender/pkg/validation"
)

func TestNewPassword(t *testing.T) {
	t.Run("default policy only requires length", func(t *testing.T) {
		p, err := NewPassword("password", "correcthorse")
		require.NoError(t, err)
		assert.Equal(t, "correcthorse", p.Secret())
	})

	t.Run("too short is a shape failure", func(t *testing.T) {
		_, err := NewPassword("password", "short")
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleShape))
	})

	t.Run("whitespace is not trimmed", func(t *testing.T) {
		// Eight characters including spaces meet the default minimum.
		p, err := NewPassword("password", "  a b c ")
		require.NoError(t, err)
		assert.Equal(t, "  a b c ", p.Secret())
	})

	t.Run("each missing character class is its own violation", func(t *testing.T) {
		_, err := NewPassword("password", "alllowercase",
			RequireUpper(), RequireLower(), RequireDigit(), RequireSymbol())
		list, ok := validation.AsErrors(err)
		require.True(t, ok)
		require.Len(t, list, 3) // upper, digit, symbol; lower is present
		for _, fe := range list {
			assert.Equal(t, validation.RuleComposition, fe.Rule)
		}
	})

	t.Run("length and class failures accumulate", func(t *testing.T) {
		_, err := NewPassword("password", "abc", RequireUpper(), RequireDigit())
		list, ok := validation.AsErrors(err)
		require.True(t, ok)
		require.Len(t, list, 3)
		assert.Equal(t, validation.RuleShape, list[0].Rule)
		assert.Equal(t, validation.RuleComposition, list[1].Rule)
		assert.Equal(t, validation.RuleComposition, list[2].Rule)
	})

	t.Run("full policy accepts a compliant password", func(t *testing.T) {
		_, err := NewPassword("password", "Tr0ub4dor&3xtra",
			MinPasswordLength(12), RequireUpper(), RequireLower(), RequireDigit(), RequireSymbol())
		require.NoError(t, err)
	})
}

func TestPasswordString(t *testing.T) {
	p, err := NewPassword("password", "supersecretvalue")
	require.NoError(t, err)
	assert.NotContains(t, p.String(), "supersecret", "String must redact the value")
	assert.Equal(t, "supersecretvalue", p.Secret())
}
