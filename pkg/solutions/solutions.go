// Package solutions registers every implemented puzzle.
package solutions

import (
	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day01"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day02"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day03"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day04"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day05"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day06"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day07"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day08"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day09"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day10"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day11"
)

// All returns both parts of every day in order.
func All() []challenge.Challenge {
	return []challenge.Challenge{
		day01.Part1{}, day01.Part2{},
		day02.Part1{}, day02.Part2{},
		day03.Part1{}, day03.Part2{},
		day04.Part1{}, day04.Part2{},
		day05.Part1{}, day05.Part2{},
		day06.Part1{}, day06.Part2{},
		day07.Part1{}, day07.Part2{},
		day08.Part1{}, day08.Part2{},
		day09.Part1{}, day09.Part2{},
		day10.Part1{}, day10.Part2{},
		day11.Part1{}, day11.Part2{},
	}
}

// Register adds All to r.
func Register(r *challenge.Registry) error {
	return r.Register(All()...)
}

// NewRegistry returns a registry holding All.
func NewRegistry() (*challenge.Registry, error) {
	r := challenge.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}

	return r, nil
}
