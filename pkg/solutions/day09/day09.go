// Package day09 solves "Mirage Maintenance": extrapolate sequences by
// repeated differencing.
package day09

import (
	"context"
	_ "embed"
	"slices"
	"strconv"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const day = 9

//go:embed input/sample.txt
var sample string

// Next predicts the value after the last element of seq.
func Next(seq []int64) int64 {
	row := slices.Clone(seq)

	var next int64

	for len(row) > 0 {
		next += row[len(row)-1]

		constant := true

		for i := range len(row) - 1 {
			row[i] = row[i+1] - row[i]
			if row[i] != row[0] {
				constant = false
			}
		}

		row = row[:len(row)-1]

		if constant && len(row) > 0 {
			next += row[0]

			break
		}
	}

	return next
}

// Prev predicts the value before the first element of seq.
func Prev(seq []int64) int64 {
	rev := slices.Clone(seq)
	slices.Reverse(rev)

	return Next(rev)
}

// Part1 sums the forward extrapolations.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "114"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	return sum(in.Text, Next)
}

// Part2 sums the backward extrapolations.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "2"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	return sum(in.Text, Prev)
}

func sum(text string, predict func([]int64) int64) (string, error) {
	var total int64

	for i, line := range challenge.Lines(text) {
		seq, err := challenge.Ints(line)
		if err != nil {
			return "", err
		}

		if len(seq) == 0 {
			return "", challenge.Malformed("line %d is empty", i+1)
		}

		total += predict(seq)
	}

	return strconv.FormatInt(total, 10), nil
}
