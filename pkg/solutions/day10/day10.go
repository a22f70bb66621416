// Package day10 solves "Pipe Maze".
package day10

import (
	"context"
	_ "embed"
	"strconv"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const day = 10

var (
	//go:embed input/sample1.txt
	sample1 string
	//go:embed input/sample2.txt
	sample2 string
	//go:embed input/sample3.txt
	sample3 string
)

// Part1 finds the loop tile farthest from the start.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample1, Want: "4"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	loop, err := loopOf(in.Text)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(len(loop) / 2), nil
}

// Part2 counts the tiles enclosed by the loop.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample3, Want: "4"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	loop, err := loopOf(in.Text)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(Enclosed(loop)), nil
}

func loopOf(text string) ([]Point, error) {
	m, err := ParseMaze(text)
	if err != nil {
		return nil, err
	}

	return m.Loop()
}
