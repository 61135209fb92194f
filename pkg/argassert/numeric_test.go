package argassert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argassert/pkg/argassert"
)

type level int

func (l level) String() string { return "level" }

func TestLessThan(t *testing.T) {
	t.Parallel()

	t.Run("returns value below bound", func(t *testing.T) {
		got, err := argassert.LessThan(2, 3, "argName")
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("fails when equal", func(t *testing.T) {
		_, err := argassert.LessThan(3, 3, "argName")
		assert.EqualError(t, err, "argName (3) is not less than 3")
	})

	t.Run("fails when greater", func(t *testing.T) {
		_, err := argassert.LessThan(4, 3, "argName")
		assert.EqualError(t, err, "argName (4) is not less than 3")
	})
}

func TestLessThanOrEqual(t *testing.T) {
	t.Parallel()

	t.Run("returns value below bound", func(t *testing.T) {
		got, err := argassert.LessThanOrEqual(2, 3, "argName")
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("returns value equal to bound", func(t *testing.T) {
		got, err := argassert.LessThanOrEqual(5, 5, "n")
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("fails when greater", func(t *testing.T) {
		_, err := argassert.LessThanOrEqual(4, 3, "argName")
		assert.EqualError(t, err, "argName (4) is greater than 3")
	})
}

func TestGreaterThan(t *testing.T) {
	t.Parallel()

	t.Run("returns value above bound", func(t *testing.T) {
		got, err := argassert.GreaterThan(4, 3, "argName")
		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	t.Run("fails when equal", func(t *testing.T) {
		_, err := argassert.GreaterThan(3, 3, "n")
		assert.EqualError(t, err, "n (3) is not greater than 3")
	})

	t.Run("fails when less", func(t *testing.T) {
		_, err := argassert.GreaterThan(4, 5, "argName")
		assert.EqualError(t, err, "argName (4) is not greater than 5")
	})
}

func TestGreaterThanOrEqual(t *testing.T) {
	t.Parallel()

	t.Run("returns value above bound", func(t *testing.T) {
		got, err := argassert.GreaterThanOrEqual(6, 5, "argName")
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("returns value equal to bound", func(t *testing.T) {
		got, err := argassert.GreaterThanOrEqual(7, 7, "n")
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("fails when less", func(t *testing.T) {
		_, err := argassert.GreaterThanOrEqual(4, 5, "argName")
		assert.EqualError(t, err, "argName (4) is less than 5")
	})
}

func TestNotNegative(t *testing.T) {
	t.Parallel()

	t.Run("fails for negative value", func(t *testing.T) {
		got, err := argassert.NotNegative(-7, "argName")
		assert.EqualError(t, err, "argName (-7) is less than 0")
		assert.Zero(t, got)
	})

	t.Run("returns zero", func(t *testing.T) {
		got, err := argassert.NotNegative(0, "argName")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("returns positive value", func(t *testing.T) {
		got, err := argassert.NotNegative(7, "argName")
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("unsigned values always pass", func(t *testing.T) {
		got, err := argassert.NotNegative(uint8(0), "argName")
		require.NoError(t, err)
		assert.Equal(t, uint8(0), got)
	})
}

func TestNumericFormatting(t *testing.T) {
	t.Parallel()

	t.Run("handles extreme int64 values", func(t *testing.T) {
		_, err := argassert.LessThan(int64(9223372036854775807), int64(-9223372036854775808), "big")
		assert.EqualError(t, err, "big (9223372036854775807) is not less than -9223372036854775808")
	})

	t.Run("prints stringer types in base 10", func(t *testing.T) {
		_, err := argassert.GreaterThan(level(1), level(2), "level")
		assert.EqualError(t, err, "level (1) is not greater than 2")
	})

	t.Run("repeated calls are idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			got, err := argassert.LessThanOrEqual(int32(3), int32(3), "n")
			require.NoError(t, err)
			assert.Equal(t, int32(3), got)
		}
	})
}
