// Package day02 solves "Cube Conundrum": games of colored cubes drawn from a bag.
package day02

import (
	"context"
	_ "embed"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const day = 2

//go:embed input/sample.txt
var sample string

// Cubes counts cubes per color.
type Cubes struct {
	Red   int
	Green int
	Blue  int
}

// Within reports whether every color count of c fits in limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power is the product of the three counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Game is one line of input.
type Game struct {
	ID    int
	Draws []Cubes
}

// Minimum returns the fewest cubes of each color that make every draw possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}

	return m
}

// Bag is the cube count the elf claims to hold.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Part1 sums the ids of games possible with Bag.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "8"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	games, err := ParseGames(in.Text)
	if err != nil {
		return "", err
	}

	sum := 0

	for _, g := range games {
		if g.Minimum().Within(Bag) {
			sum += g.ID
		}
	}

	return strconv.Itoa(sum), nil
}

// Part2 sums the power of each game's minimum set.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "2286"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	games, err := ParseGames(in.Text)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, g := range games {
		sum += g.Minimum().Power()
	}

	return strconv.Itoa(sum), nil
}

// ParseGames parses lines like "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGames(text string) ([]Game, error) {
	lines := challenge.Lines(text)
	games := make([]Game, 0, len(lines))

	for _, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}

		games = append(games, g)
	}

	return games, nil
}

func parseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, challenge.Malformed("missing ':' in %q", line)
	}

	idStr, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, challenge.Malformed("missing game header in %q", line)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return Game{}, challenge.Malformed("game id %q", idStr)
	}

	g := Game{ID: id}

	for draw := range strings.SplitSeq(body, ";") {
		var c Cubes

		for item := range strings.SplitSeq(draw, ",") {
			amountStr, color, ok := strings.Cut(strings.TrimSpace(item), " ")
			if !ok {
				return Game{}, challenge.Malformed("cube count %q", item)
			}

			amount, err := strconv.Atoi(amountStr)
			if err != nil {
				return Game{}, challenge.Malformed("cube count %q", item)
			}

			switch color {
			case "red":
				c.Red += amount
			case "green":
				c.Green += amount
			case "blue":
				c.Blue += amount
			default:
				return Game{}, challenge.Malformed("color %q", color)
			}
		}

		g.Draws = append(g.Draws, c)
	}

	return g, nil
}
