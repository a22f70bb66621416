package safeconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustAddSigned(t *testing.T) {
	t.Parallel()

	t.Run("positive_offset", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint64(1040), MustAddSigned(40, 1000))
	})

	t.Run("negative_offset", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint64(7), MustAddSigned(10, -3))
	})

	t.Run("down_to_zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint64(0), MustAddSigned(5, -5))
	})

	t.Run("min_int64_offset", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint64(0), MustAddSigned(uint64(1)<<63, math.MinInt64))
	})

	t.Run("underflow_panics", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "safeconv: unsigned add underflow", func() {
			MustAddSigned(2, -3)
		})
	})

	t.Run("overflow_panics", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "safeconv: unsigned add overflow", func() {
			MustAddSigned(math.MaxUint64, 1)
		})
	})
}

func TestMustDiff(t *testing.T) {
	t.Parallel()

	t.Run("positive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int64(2), MustDiff(52, 50))
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int64(-48), MustDiff(50, 98))
	})

	t.Run("min_int64", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int64(math.MinInt64), MustDiff(0, uint64(1)<<63))
	})

	t.Run("too_large_panics", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "safeconv: difference exceeds int64", func() {
			MustDiff(math.MaxUint64, 0)
		})
	})
}
