package day06_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day06"
)

func TestSamples(t *testing.T) {
	t.Parallel()

	for _, c := range []challenge.Challenge{day06.Part1{}, day06.Part2{}} {
		t.Run(challenge.Title(c), func(t *testing.T) {
			t.Parallel()

			s := c.Sample()
			got, err := c.Solve(context.Background(), challenge.Input{Text: s.Input, Sample: true})
			require.NoError(t, err)
			assert.Equal(t, s.Want, got)
		})
	}
}

func bruteForce(r day06.Race) int64 {
	var n int64
	for h := int64(0); h <= r.Time; h++ {
		if h*(r.Time-h) > r.Distance {
			n++
		}
	}

	return n
}

func TestRace_Ways_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	for tm := int64(0); tm <= 60; tm++ {
		for d := int64(0); d <= tm*tm/4+2; d++ {
			r := day06.Race{Time: tm, Distance: d}
			require.Equal(t, bruteForce(r), r.Ways(), "time=%d distance=%d", tm, d)
		}
	}
}

func TestRace_Ways_Samples(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(4), day06.Race{Time: 7, Distance: 9}.Ways())
	assert.Equal(t, int64(8), day06.Race{Time: 15, Distance: 40}.Ways())
	// Exact roots at 10 and 20 do not beat the record.
	assert.Equal(t, int64(9), day06.Race{Time: 30, Distance: 200}.Ways())
	assert.Equal(t, int64(0), day06.Race{Time: 4, Distance: 4}.Ways())
}

func TestParseRaces_Malformed(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{
		"Time: 7\n",
		"Time: 7 15\nDistance: 9\n",
		"Tm: 7\nDistance: 9\n",
		"Time: 7\nDistance: x\n",
	} {
		_, err := day06.ParseRaces(bad)
		require.ErrorIs(t, err, challenge.ErrMalformedInput, bad)
	}
}
