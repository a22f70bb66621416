package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

type stub struct {
	day, part int
	input     string
	want      string
}

func (s stub) Day() int  { return s.day }
func (s stub) Part() int { return s.part }

func (s stub) Sample() challenge.Sample {
	return challenge.Sample{Input: s.input, Want: s.want}
}

func (s stub) Solve(_ context.Context, in challenge.Input) (string, error) {
	return in.Text, nil
}

func stubRegistry(cs ...challenge.Challenge) registryProvider {
	return func() (*challenge.Registry, error) {
		r := challenge.NewRegistry()

		return r, r.Register(cs...)
	}
}

func runCmd(t *testing.T, registry registryProvider, args ...string) (string, error) {
	t.Helper()

	cmd := newRunCommandWithDeps(&Globals{}, registry)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRunCommand_SamplesPass(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, stubRegistry(stub{day: 1, part: 1, input: "7", want: "7"}), "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 1 / Part 1")
	assert.Contains(t, out, "1 passed, 0 failed")
}

func TestRunCommand_FailedSampleReturnsError(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, stubRegistry(stub{day: 1, part: 1, input: "7", want: "8"}), "--no-color")
	require.ErrorIs(t, err, ErrChallengesFailed)
	assert.Contains(t, out, "should be 8")
}

func TestRunCommand_JSONFormat(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, stubRegistry(
		stub{day: 2, part: 1, input: "a", want: "a"},
		stub{day: 2, part: 2, input: "b", want: "b"},
	), "--format", "json", "--part", "2")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			Part   int    `json:"part"`
			Status string `json:"status"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, 2, doc.Results[0].Part)
	assert.Equal(t, "pass", doc.Results[0].Status)
}

func TestRunCommand_RealInputsAndAnswers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day03.txt"), []byte("99"), 0o600))

	answers := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte("answers:\n  - day: 3\n    part: 1\n    answer: \"99\"\n"), 0o600))

	out, err := runCmd(t, stubRegistry(stub{day: 3, part: 1, input: "1", want: "1"}),
		"--inputs", dir, "--answers", answers, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "99")
}

func TestRunCommand_SampleFlagIgnoresInputs(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, stubRegistry(stub{day: 3, part: 1, input: "1", want: "1"}),
		"--inputs", t.TempDir(), "--sample", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed")
}

func TestRunCommand_MissingInput(t *testing.T) {
	t.Parallel()

	_, err := runCmd(t, stubRegistry(stub{day: 4, part: 1, input: "1", want: "1"}),
		"--inputs", t.TempDir(), "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day04.txt")
}

func TestRunCommand_InvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "format", args: []string{"--format", "xml"}},
		{name: "repeat", args: []string{"--repeat", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := runCmd(t, stubRegistry(stub{day: 1, part: 1, input: "1", want: "1"}), tt.args...)
			require.Error(t, err)
		})
	}
}

func TestRunCommand_UnknownDay(t *testing.T) {
	t.Parallel()

	_, err := runCmd(t, stubRegistry(stub{day: 1, part: 1, input: "1", want: "1"}), "--day", "9")
	require.ErrorIs(t, err, challenge.ErrNoMatch)
}

func TestRunCommand_WritesPlotAndMetrics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	plot := filepath.Join(dir, "timings.html")
	prom := filepath.Join(dir, "advent.prom")

	_, err := runCmd(t, stubRegistry(stub{day: 1, part: 1, input: "1", want: "1"}),
		"--no-color", "--plot-out", plot, "--metrics-out", prom)
	require.NoError(t, err)

	html, err := os.ReadFile(plot)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Solve time per challenge")

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "advent_solver_runs")
}

func TestRunCommand_KeyArguments(t *testing.T) {
	t.Parallel()

	registry := stubRegistry(
		stub{day: 5, part: 1, input: "a", want: "a"},
		stub{day: 5, part: 2, input: "b", want: "b"},
		stub{day: 6, part: 1, input: "c", want: "c"},
	)

	out, err := runCmd(t, registry, "--format", "json", "6/1", "05/2")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			Day  int `json:"day"`
			Part int `json:"part"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 2)
	assert.Equal(t, 6, doc.Results[0].Day)
	assert.Equal(t, 2, doc.Results[1].Part)

	_, err = runCmd(t, registry, "7/1")
	require.ErrorIs(t, err, challenge.ErrNoMatch)

	_, err = runCmd(t, registry, "five")
	require.ErrorIs(t, err, challenge.ErrInvalidKey)
}
