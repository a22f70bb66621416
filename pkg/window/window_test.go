package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/advent/pkg/window"
)

func TestCentered(t *testing.T) {
	t.Parallel()

	var got []window.Window[int]
	for _, w := range window.Centered([]int{0, 1, 2, 3, 4}) {
		got = append(got, w)
	}

	assert.Equal(t, []window.Window[int]{
		{Cur: 0, Next: 1, HasNext: true},
		{Prev: 0, Cur: 1, Next: 2, HasPrev: true, HasNext: true},
		{Prev: 1, Cur: 2, Next: 3, HasPrev: true, HasNext: true},
		{Prev: 2, Cur: 3, Next: 4, HasPrev: true, HasNext: true},
		{Prev: 3, Cur: 4, HasPrev: true},
	}, got)
}

func TestCentered_Single(t *testing.T) {
	t.Parallel()

	for i, w := range window.Centered([]string{"only"}) {
		assert.Equal(t, 0, i)
		assert.Equal(t, "only", w.Cur)
		assert.False(t, w.HasPrev)
		assert.False(t, w.HasNext)
	}
}

func TestCentered_StopsEarly(t *testing.T) {
	t.Parallel()

	n := 0
	for i := range window.Centered([]int{1, 2, 3}) {
		n++

		if i == 1 {
			break
		}
	}

	assert.Equal(t, 2, n)
}

func TestCentered_Empty(t *testing.T) {
	t.Parallel()

	for range window.Centered[int](nil) {
		t.Fatal("unexpected window")
	}
}
