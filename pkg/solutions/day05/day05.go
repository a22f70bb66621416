// Package day05 solves "If You Give A Seed A Fertilizer" with the rangeshift engine.
package day05

import (
	"context"
	_ "embed"
	"strconv"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/rangeshift"
)

const day = 5

//go:embed input/sample.txt
var sample string

// Part1 finds the lowest location of any listed seed.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "35"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	a, err := ParseAlmanac(in.Text)
	if err != nil {
		return "", err
	}

	seeds, err := a.SeedPoints()
	if err != nil {
		return "", err
	}

	return lowest(a.Pipeline(), seeds)
}

// Part2 reads the seeds as ranges and finds the lowest reachable location.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "46"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	a, err := ParseAlmanac(in.Text)
	if err != nil {
		return "", err
	}

	seeds, err := a.SeedRanges()
	if err != nil {
		return "", err
	}

	return lowest(a.Pipeline(), seeds)
}

func lowest(p rangeshift.Pipeline, seeds rangeshift.Set) (string, error) {
	v, ok := p.Lowest(seeds)
	if !ok {
		return "", challenge.Malformed("no seeds")
	}

	return strconv.FormatUint(v, 10), nil
}
