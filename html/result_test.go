package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_EnsureSpacing(t *testing.T) {
	t.Parallel()

	t.Run("pads missing newlines", func(t *testing.T) {
		t.Parallel()

		r := newResult(10)
		r.add("a")

		require.NoError(t, r.ensureSpacing(2))

		assert.Equal(t, "a\n\n", r.String())
		assert.Equal(t, 8, r.credits)
	})

	t.Run("collapses excess newlines and refunds", func(t *testing.T) {
		t.Parallel()

		r := newResult(10)
		require.NoError(t, r.addAndConsume("a\n\n\n\n", false))

		require.NoError(t, r.ensureSpacing(2))

		assert.Equal(t, "a\n\n", r.String())
		assert.Equal(t, 7, r.credits)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		r := newResult(10)
		r.add("a\n")

		require.NoError(t, r.ensureSpacing(2))
		once, credits := r.String(), r.credits
		require.NoError(t, r.ensureSpacing(2))

		assert.Equal(t, once, r.String())
		assert.Equal(t, credits, r.credits)
	})

	t.Run("never writes unpaid newlines", func(t *testing.T) {
		t.Parallel()

		r := newResult(1)
		r.add("a")

		err := r.ensureSpacing(2)

		assert.ErrorIs(t, err, errCreditsEmpty)
		assert.Equal(t, "a\n", r.String())
		assert.Equal(t, 0, r.credits)
	})
}

func TestResult_AddAndConsume(t *testing.T) {
	t.Parallel()

	t.Run("rejects oversized text without writing", func(t *testing.T) {
		t.Parallel()

		r := newResult(3)

		err := r.addAndConsume("abcd", false)

		assert.ErrorIs(t, err, errCreditsEmpty)
		assert.Empty(t, r.String())
		assert.Equal(t, 3, r.credits)
	})

	t.Run("writes truncated text before signalling", func(t *testing.T) {
		t.Parallel()

		r := newResult(3)

		err := r.addAndConsume("abcd", true)

		assert.ErrorIs(t, err, errCreditsEmpty)
		assert.Equal(t, "abc", r.String())
		assert.Equal(t, 0, r.credits)
	})

	t.Run("writes exact fit", func(t *testing.T) {
		t.Parallel()

		r := newResult(3)

		require.NoError(t, r.addAndConsume("abc", true))
		assert.Equal(t, 0, r.credits)
	})
}

func TestResult_CanAfford(t *testing.T) {
	t.Parallel()

	r := newResult(5)

	assert.True(t, r.canAfford("**", "**", " "))
	assert.False(t, r.canAfford("**", "**", "  "))
	assert.True(t, r.canAfford("äöü"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "äö", truncate("äöü", 2))
}
