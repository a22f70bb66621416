// Package day11 solves "Cosmic Expansion": pairwise galaxy distances after
// empty rows and columns grow.
package day11

import (
	"context"
	_ "embed"
	"slices"
	"strconv"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const day = 11

//go:embed input/sample.txt
var sample string

// Expansion factors for part two on real and sample input.
const (
	RealFactor   = 1_000_000
	SampleFactor = 100
)

// Image holds galaxy coordinates as parsed.
type Image struct {
	Rows []int
	Cols []int
}

// ParseImage collects the coordinates of every '#'.
func ParseImage(text string) (Image, error) {
	var img Image

	lines := challenge.Lines(text)
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			return Image{}, challenge.Malformed("row %d has width %d, want %d", r+1, len(line), len(lines[0]))
		}

		for c := range len(line) {
			switch line[c] {
			case '#':
				img.Rows = append(img.Rows, r)
				img.Cols = append(img.Cols, c)
			case '.':
			default:
				return Image{}, challenge.Malformed("tile %q at %d,%d", line[c], r+1, c+1)
			}
		}
	}

	return img, nil
}

// Distances sums the Manhattan distance over all galaxy pairs when every
// empty row and column is replaced by factor copies of itself.
func (img Image) Distances(factor int64) int64 {
	return axis(img.Rows, factor) + axis(img.Cols, factor)
}

// axis expands one coordinate axis and sums pairwise gaps using prefix sums
// over the sorted positions.
func axis(coords []int, factor int64) int64 {
	sorted := slices.Clone(coords)
	slices.Sort(sorted)

	var (
		sum, prefix int64
		expanded    int64
	)

	for i, c := range sorted {
		if i > 0 {
			gap := int64(c - sorted[i-1])
			if gap > 1 {
				expanded += (gap - 1) * factor
			}

			if gap > 0 {
				expanded++
			}
		}

		sum += int64(i)*expanded - prefix
		prefix += expanded
	}

	return sum
}

// Part1 doubles the empty space.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "374"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	return solve(in.Text, 2)
}

// Part2 grows empty space by a million, or by SampleFactor on the sample.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "8410"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	factor := int64(RealFactor)
	if in.Sample {
		factor = SampleFactor
	}

	return solve(in.Text, factor)
}

func solve(text string, factor int64) (string, error) {
	img, err := ParseImage(text)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(img.Distances(factor), 10), nil
}
