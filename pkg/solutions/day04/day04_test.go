package day04_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day04"
)

func TestSamples(t *testing.T) {
	t.Parallel()

	for _, c := range []challenge.Challenge{day04.Part1{}, day04.Part2{}} {
		t.Run(challenge.Title(c), func(t *testing.T) {
			t.Parallel()

			s := c.Sample()
			got, err := c.Solve(context.Background(), challenge.Input{Text: s.Input, Sample: true})
			require.NoError(t, err)
			assert.Equal(t, s.Want, got)
		})
	}
}

func TestCard_Points(t *testing.T) {
	t.Parallel()

	cards, err := day04.ParseCards(day04.Part1{}.Sample().Input)
	require.NoError(t, err)
	require.Len(t, cards, 6)

	var matches, points []int
	for _, c := range cards {
		matches = append(matches, c.Matches())
		points = append(points, c.Points())
	}

	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, matches)
	assert.Equal(t, []int{8, 2, 2, 1, 0, 0}, points)
}

func TestParseCards_Malformed(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{
		"Card 1 41 | 83",
		"Deck 1: 41 | 83",
		"Card 1: 41 83",
		"Card 1: 4x | 83",
	} {
		_, err := day04.ParseCards(bad)
		require.ErrorIs(t, err, challenge.ErrMalformedInput, bad)
	}
}
