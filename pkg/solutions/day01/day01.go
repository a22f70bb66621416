// Package day01 solves "Trebuchet?!": sum the calibration value (first digit
// times ten plus last digit) of every line.
package day01

import (
	"context"
	_ "embed"
	"strconv"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/digitword"
)

const day = 1

var (
	//go:embed input/sample1.txt
	sample1 string
	//go:embed input/sample2.txt
	sample2 string
)

var (
	numerals = digitword.MustNew(digitword.None)
	spelled  = digitword.MustNew(digitword.English)
)

// Part1 counts ASCII numerals only.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample1, Want: "142"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	return calibrate(in.Text, numerals)
}

// Part2 also accepts the words one through nine.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample2, Want: "281"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	return calibrate(in.Text, spelled)
}

func calibrate(text string, s *digitword.Scanner) (string, error) {
	sum := 0

	for i, line := range challenge.Lines(text) {
		v, ok := s.Calibration(line)
		if !ok {
			return "", challenge.Malformed("line %d has no digit: %q", i+1, line)
		}

		sum += v
	}

	return strconv.Itoa(sum), nil
}
