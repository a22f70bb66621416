package rangeshift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/advent/pkg/rangeshift"
)

// almanac is the seed-to-location chain of the 2023 day 5 worked example.
func almanac() rangeshift.Pipeline {
	r := rangeshift.NewRule

	return rangeshift.Pipeline{
		{r(50, 98, 2), r(52, 50, 48)},
		{r(0, 15, 37), r(37, 52, 2), r(39, 0, 15)},
		{r(49, 53, 8), r(0, 11, 42), r(42, 0, 7), r(57, 7, 4)},
		{r(88, 18, 7), r(18, 25, 70)},
		{r(45, 77, 23), r(81, 45, 19), r(68, 64, 13)},
		{r(0, 69, 1), r(1, 0, 69)},
		{r(60, 56, 37), r(56, 93, 4)},
	}
}

func TestPipeline_Lowest_WorkedExample(t *testing.T) {
	t.Parallel()

	seeds := rangeshift.Set{rangeshift.Span(79, 14), rangeshift.Span(55, 13)}

	lowest, ok := almanac().Lowest(seeds)
	require.True(t, ok)
	assert.Equal(t, uint64(46), lowest)
}

func TestPipeline_Run_PreservesPointCount(t *testing.T) {
	t.Parallel()

	seeds := rangeshift.Set{rangeshift.Span(79, 14), rangeshift.Span(55, 13)}

	assert.Equal(t, uint64(27), almanac().Run(seeds).Points())
}

func TestPipeline_Map_MatchesRun(t *testing.T) {
	t.Parallel()

	p := almanac()

	tests := map[uint64]uint64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range tests {
		assert.Equal(t, want, p.Map(seed), "seed %d", seed)

		lowest, ok := p.Lowest(rangeshift.Set{rangeshift.Span(seed, 1)})
		require.True(t, ok)
		assert.Equal(t, want, lowest, "seed %d", seed)
	}
}

func TestPipeline_Lowest_NoSeeds(t *testing.T) {
	t.Parallel()

	_, ok := almanac().Lowest(nil)
	assert.False(t, ok)
}

func TestPipeline_Run_NoStages(t *testing.T) {
	t.Parallel()

	seeds := rangeshift.Set{rangeshift.Span(1, 2)}

	assert.Equal(t, seeds, rangeshift.Pipeline(nil).Run(seeds))
}
