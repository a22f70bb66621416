package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const almanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func shiftCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out, _, err := shiftCmdWith(t, &Globals{}, stdin, args...)

	return out, err
}

func shiftCmdWith(t *testing.T, g *Globals, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewShiftCommand(g)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func lowestLine(t *testing.T, out string) string {
	t.Helper()

	for line := range strings.SplitSeq(out, "\n") {
		if strings.Contains(strings.ToLower(line), "lowest") {
			return line
		}
	}

	t.Fatalf("no lowest row in output:\n%s", out)

	return ""
}

func TestShiftCommand_SeedRangesFromStdin(t *testing.T) {
	t.Parallel()

	out, err := shiftCmd(t, almanac, "-")
	require.NoError(t, err)
	assert.Contains(t, lowestLine(t, out), "46")
}

func TestShiftCommand_PointsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "almanac.txt")
	require.NoError(t, os.WriteFile(path, []byte(almanac), 0o600))

	out, err := shiftCmd(t, "", "--points", path)
	require.NoError(t, err)
	assert.Contains(t, lowestLine(t, out), "35")
}

func TestShiftCommand_SeedsFlagOverrides(t *testing.T) {
	t.Parallel()

	out, err := shiftCmd(t, almanac, "--seeds", "13", "--points", "--stages", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "seed-to-soil")
	assert.Contains(t, lowestLine(t, out), "35")
}

func TestShiftCommand_Merge(t *testing.T) {
	t.Parallel()

	text := "seeds: 0 10 10 10\n\nx-to-y map:\n100 0 5\n"

	out, err := shiftCmd(t, text, "--merge", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "[5, 20)")
	assert.Contains(t, out, "[100, 105)")
	assert.Contains(t, lowestLine(t, out), "5")
}

func TestShiftCommand_Errors(t *testing.T) {
	t.Parallel()

	_, err := shiftCmd(t, "x-to-y map:\n1 2 3\n", "-")
	require.ErrorIs(t, err, ErrNoSeeds)

	_, err = shiftCmd(t, almanac, "--seeds", "1 2 3", "-")
	require.ErrorIs(t, err, challenge.ErrMalformedInput)

	_, err = shiftCmd(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestShiftCommand_VerboseLogsEachMap(t *testing.T) {
	t.Parallel()

	out, logs, err := shiftCmdWith(t, &Globals{Verbose: true}, almanac, "-")
	require.NoError(t, err)
	assert.Contains(t, lowestLine(t, out), "46")
	assert.Contains(t, logs, "applied map")
	assert.Contains(t, logs, "map=seed-to-soil")
	assert.Contains(t, logs, "map=humidity-to-location")
}

func TestShiftCommand_QuietSuppressesDebug(t *testing.T) {
	t.Parallel()

	_, logs, err := shiftCmdWith(t, &Globals{Quiet: true}, almanac, "-")
	require.NoError(t, err)
	assert.NotContains(t, logs, "applied map")
}

func TestShiftCommand_MissingConfigFile(t *testing.T) {
	t.Parallel()

	g := &Globals{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}

	_, _, err := shiftCmdWith(t, g, almanac, "-")
	require.Error(t, err)
}

func TestShiftCommand_SeedRangeOverflow(t *testing.T) {
	t.Parallel()

	_, err := shiftCmd(t, almanac, "--seeds", "10 18446744073709551615", "-")
	require.ErrorIs(t, err, challenge.ErrMalformedInput)
}
