package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/report"
	"github.com/Sumatoshi-tech/advent/pkg/runner"
)

func summary() runner.Summary {
	return runner.Summary{
		Total: 42 * time.Millisecond,
		Results: []runner.Result{
			{
				Key: challenge.Key{Day: 5, Part: 1}, Title: "Day 5 / Part 1",
				Answer: "35", Want: "35", Status: runner.Pass, Sample: true,
				Elapsed: time.Millisecond, Mean: time.Millisecond, Runs: 1,
			},
			{
				Key: challenge.Key{Day: 5, Part: 2}, Title: "Day 5 / Part 2",
				Answer: "47", Want: "46", Status: runner.Fail,
				Elapsed: 2 * time.Millisecond, Mean: 3 * time.Millisecond, StdDev: time.Millisecond, Runs: 4,
			},
			{
				Key: challenge.Key{Day: 6, Part: 1}, Title: "Day 6 / Part 1",
				Answer: "288", Status: runner.Unchecked, Runs: 1,
			},
			{
				Key: challenge.Key{Day: 7, Part: 1}, Title: "Day 7 / Part 1",
				Status: runner.Error, Err: errors.New("malformed input: hand \"x\""),
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"table", "JSON", " yaml ", "plot"} {
		f, err := report.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Contains(t, report.Formats, f)
	}

	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := report.Render(&bytes.Buffer{}, summary(), report.Options{Format: "csv"})
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestRender_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, summary(), report.Options{NoColor: true}))

	out := buf.String()
	assert.Contains(t, out, "✅")
	assert.Contains(t, out, "❌")
	assert.Contains(t, out, "❔")
	assert.Contains(t, out, "Day 5 / Part 1 (sample)")
	assert.Contains(t, out, "should be 46")
	assert.NotContains(t, out, "[-")
	assert.Contains(t, out, "malformed input")
	assert.Contains(t, out, "3ms ± 1ms (×4)")
	assert.Contains(t, out, "1 passed, 2 failed")
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_TableVerboseDiff(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, summary(), report.Options{Format: report.FormatTable, NoColor: true, Verbose: true}))

	assert.Contains(t, buf.String(), "should be 46 (4[-6][+7])")
}

func TestRender_TableColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, summary(), report.Options{}))

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRender_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, summary(), report.Options{Format: report.FormatJSON}))

	var doc struct {
		Results []map[string]any `json:"results"`
		TotalNS int64            `json:"total_ns"`
		Passed  int              `json:"passed"`
		Failed  int              `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Results, 4)
	assert.Equal(t, int64(42*time.Millisecond), doc.TotalNS)
	assert.Equal(t, 1, doc.Passed)
	assert.Equal(t, 2, doc.Failed)

	first := doc.Results[0]
	assert.InDelta(t, 5, first["day"], 0)
	assert.Equal(t, "pass", first["status"])
	assert.Equal(t, true, first["sample"])
	assert.InDelta(t, float64(time.Millisecond), first["elapsed_ns"], 0)
	assert.NotContains(t, doc.Results[2], "want")
	assert.Equal(t, "malformed input: hand \"x\"", doc.Results[3]["error"])
}

func TestRender_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, summary(), report.Options{Format: report.FormatYAML}))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	results, ok := doc["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 4)

	second, ok := results[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fail", second["status"])
	assert.Equal(t, "46", second["want"])
	assert.Equal(t, 4, second["runs"])
}

func TestRender_Plot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, summary(), report.Options{Format: report.FormatPlot}))

	out := buf.String()
	assert.True(t, strings.Contains(out, "<html") || strings.Contains(out, "<!DOCTYPE"))
	assert.Contains(t, out, "advent timings")
	assert.Contains(t, out, "Solve time per challenge")
}

func TestMark(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✅", report.Mark(runner.Pass))
	assert.Equal(t, "❌", report.Mark(runner.Fail))
	assert.Equal(t, "❌", report.Mark(runner.Error))
	assert.Equal(t, "❔", report.Mark(runner.Unchecked))
}
