package day08_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day08"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSamples(t *testing.T) {
	t.Parallel()

	for _, c := range []challenge.Challenge{day08.Part1{}, day08.Part2{}} {
		t.Run(challenge.Title(c), func(t *testing.T) {
			t.Parallel()

			s := c.Sample()
			got, err := c.Solve(context.Background(), challenge.Input{Text: s.Input, Sample: true})
			require.NoError(t, err)
			assert.Equal(t, s.Want, got)
		})
	}
}

func TestPart1_FirstExample(t *testing.T) {
	t.Parallel()

	text := "RL\n\nAAA = (BBB, CCC)\nBBB = (DDD, EEE)\nCCC = (ZZZ, GGG)\n" +
		"DDD = (DDD, DDD)\nEEE = (EEE, EEE)\nGGG = (GGG, GGG)\nZZZ = (ZZZ, ZZZ)\n"

	got, err := day08.Part1{}.Solve(context.Background(), challenge.Input{Text: text})
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestWalk_NoExit(t *testing.T) {
	t.Parallel()

	net, err := day08.ParseNetwork("L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n")
	require.NoError(t, err)

	_, err = day08.Part1{}.Solve(context.Background(), challenge.Input{Text: "L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n"})
	require.ErrorIs(t, err, day08.ErrNoExit)

	_, err = day08.GhostSteps(context.Background(), net)
	require.ErrorIs(t, err, day08.ErrNoExit)
}

func TestGhostSteps_OneGhostFailsOthersStop(t *testing.T) {
	t.Parallel()

	text := "L\n\n11A = (11Z, 11Z)\n11Z = (11A, 11A)\n22A = (22B, 22B)\n22B = (22A, 22A)\n"
	net, err := day08.ParseNetwork(text)
	require.NoError(t, err)

	_, err = day08.GhostSteps(context.Background(), net)
	require.ErrorIs(t, err, day08.ErrNoExit)
}

func TestGhostSteps_Cancelled(t *testing.T) {
	t.Parallel()

	net, err := day08.ParseNetwork(day08.Part2{}.Sample().Input)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = day08.GhostSteps(ctx, net)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseNetwork(t *testing.T) {
	t.Parallel()

	net, err := day08.ParseNetwork(day08.Part1{}.Sample().Input)
	require.NoError(t, err)

	assert.Equal(t, "LLR", net.Directions)
	assert.Equal(t, []string{"AAA", "BBB", "ZZZ"}, net.Order)
	assert.Equal(t, day08.Node{Left: "AAA", Right: "ZZZ"}, net.Nodes["BBB"])
}

func TestParseNetwork_Malformed(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{
		"LR\n",
		"LX\n\nAAA = (AAA, AAA)\n",
		"LR\n\nAAA (AAA, AAA)\n",
		"LR\n\nAAA = AAA, AAA\n",
		"LR\n\nAAA = (AAA AAA)\n",
		"LR\n\nAAA = (AAA, AAA)\nAAA = (AAA, AAA)\n",
	} {
		_, err := day08.ParseNetwork(bad)
		require.ErrorIs(t, err, challenge.ErrMalformedInput, bad)
	}
}

func TestWalk_UnknownNode(t *testing.T) {
	t.Parallel()

	_, err := day08.Part1{}.Solve(context.Background(), challenge.Input{Text: "L\n\nAAA = (QQQ, QQQ)\n"})
	require.ErrorIs(t, err, challenge.ErrMalformedInput)
}
