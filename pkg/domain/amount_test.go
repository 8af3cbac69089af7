package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tender/pkg/validation"
)

func TestNewAmount(t *testing.T) {
	t.Run("accepts positive decimals", func(t *testing.T) {
		a, err := NewAmount("amount", decimal.RequireFromString("99.99"))
		require.NoError(t, err)
		assert.True(t, a.Decimal().Equal(decimal.RequireFromString("99.99")))
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := NewAmount("amount", decimal.Zero)
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleRange))
	})

	t.Run("rejects negatives", func(t *testing.T) {
		_, err := NewAmount("amount", decimal.RequireFromString("-0.01"))
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleRange))
	})
}

func TestNewAmountFromString(t *testing.T) {
	t.Run("parses and validates", func(t *testing.T) {
		a, err := NewAmountFromString("amount", "12.50")
		require.NoError(t, err)
		assert.Equal(t, "12.5", a.String())
	})

	t.Run("unparseable input is a shape failure", func(t *testing.T) {
		_, err := NewAmountFromString("amount", "twelve")
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleShape))
		assert.False(t, validation.HasRule(err, validation.RuleRange))
	})

	t.Run("parseable but non-positive is a range failure", func(t *testing.T) {
		_, err := NewAmountFromString("amount", "0")
		require.Error(t, err)
		assert.True(t, validation.HasRule(err, validation.RuleRange))
	})
}

func TestAmountEqual(t *testing.T) {
	a := MustAmount("10.00")
	b := MustAmount("10")
	c := MustAmount("10.01")

	assert.True(t, a.Equal(b), "trailing zeros do not change the value")
	assert.False(t, a.Equal(c))
}

func TestMustAmount(t *testing.T) {
	assert.Panics(t, func() { MustAmount("not-a-number") })
	assert.Panics(t, func() { MustAmount("-5") })
	assert.NotPanics(t, func() { MustAmount("0.01") })
}
