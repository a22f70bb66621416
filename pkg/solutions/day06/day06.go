// Package day06 solves "Wait For It": ways to beat each boat race record.
package day06

import (
	"context"
	_ "embed"
	"math"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const day = 6

//go:embed input/sample.txt
var sample string

// Race is one time limit and the record distance to beat.
type Race struct {
	Time     int64
	Distance int64
}

// beats reports whether holding the button for hold ms beats the record.
func (r Race) beats(hold int64) bool {
	return hold*(r.Time-hold) > r.Distance
}

// Ways counts the integer hold times that beat the record.
// Candidates come from the roots of h*(T-h) = D and are corrected by one
// step in each direction to absorb floating point error.
func (r Race) Ways() int64 {
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Distance)
	if disc < 0 {
		return 0
	}

	root := math.Sqrt(disc)
	lo := int64(math.Floor((float64(r.Time) - root) / 2))
	hi := int64(math.Ceil((float64(r.Time) + root) / 2))

	lo = max(lo-1, 0)
	hi = min(hi+1, r.Time)

	for lo <= hi && !r.beats(lo) {
		lo++
	}

	for hi >= lo && !r.beats(hi) {
		hi--
	}

	if lo > hi {
		return 0
	}

	return hi - lo + 1
}

// Part1 multiplies the ways of every race.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "288"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	races, err := ParseRaces(in.Text)
	if err != nil {
		return "", err
	}

	product := int64(1)
	for _, r := range races {
		product *= r.Ways()
	}

	return strconv.FormatInt(product, 10), nil
}

// Part2 ignores the spaces and treats each line as one number.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "71503"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	kerned := strings.NewReplacer(" ", "", "\t", "", ":", ": ").Replace(in.Text)

	races, err := ParseRaces(kerned)
	if err != nil {
		return "", err
	}

	if len(races) != 1 {
		return "", challenge.Malformed("expected one race, got %d", len(races))
	}

	return strconv.FormatInt(races[0].Ways(), 10), nil
}

// ParseRaces reads the "Time:" and "Distance:" lines.
func ParseRaces(text string) ([]Race, error) {
	lines := challenge.Lines(text)
	if len(lines) != 2 {
		return nil, challenge.Malformed("expected 2 lines, got %d", len(lines))
	}

	times, err := field(lines[0], "Time:")
	if err != nil {
		return nil, err
	}

	dists, err := field(lines[1], "Distance:")
	if err != nil {
		return nil, err
	}

	if len(times) != len(dists) {
		return nil, challenge.Malformed("%d times but %d distances", len(times), len(dists))
	}

	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: dists[i]}
	}

	return races, nil
}

func field(line, label string) ([]int64, error) {
	rest, ok := strings.CutPrefix(line, label)
	if !ok {
		return nil, challenge.Malformed("missing %q in %q", label, line)
	}

	return challenge.Ints(rest)
}
