package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tender/pkg/validation"
)

func TestNewPositive(t *testing.T) {
	t.Run("accepts positive integers", func(t *testing.T) {
		p, err := NewPositive("quantity", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, p.Value())
	})

	t.Run("accepts positive floats", func(t *testing.T) {
		p, err := NewPositive("rate", 0.01)
		require.NoError(t, err)
		assert.Equal(t, 0.01, p.Value())
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := NewPositive("quantity", 0)
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleRange))
	})

	t.Run("rejects negatives", func(t *testing.T) {
		_, err := NewPositive("quantity", -7)
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleRange))
	})
}

func TestNewNonNegative(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		n, err := NewNonNegative("balance", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, n.Value())
	})

	t.Run("accepts positives", func(t *testing.T) {
		n, err := NewNonNegative("balance", int64(42))
		require.NoError(t, err)
		assert.Equal(t, int64(42), n.Value())
	})

	t.Run("rejects negatives", func(t *testing.T) {
		_, err := NewNonNegative("balance", -0.5)
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleRange))
	})
}
