// Package day04 solves "Scratchcards".
package day04

import (
	"context"
	_ "embed"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const day = 4

//go:embed input/sample.txt
var sample string

// Card holds the winning numbers and the numbers the player has.
type Card struct {
	ID      int
	Winning []int64
	Have    []int64
}

// Matches counts the player's numbers that are also winning numbers.
func (c Card) Matches() int {
	win := make(map[int64]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		win[w] = struct{}{}
	}

	n := 0

	for _, h := range c.Have {
		if _, ok := win[h]; ok {
			n++
		}
	}

	return n
}

// Points is 2^(matches-1), or zero when nothing matches.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}

	return 1 << (m - 1)
}

// Part1 sums the points of every card.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "13"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	cards, err := ParseCards(in.Text)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}

	return strconv.Itoa(sum), nil
}

// Part2 counts cards after each card wins copies of the cards below it.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "30"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	cards, err := ParseCards(in.Text)
	if err != nil {
		return "", err
	}

	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	total := 0

	for i, c := range cards {
		total += copies[i]

		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	return strconv.Itoa(total), nil
}

// ParseCards parses lines like "Card 1: 41 48 | 83 86 6".
func ParseCards(text string) ([]Card, error) {
	lines := challenge.Lines(text)
	cards := make([]Card, 0, len(lines))

	for _, line := range lines {
		head, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, challenge.Malformed("missing ':' in %q", line)
		}

		idStr, ok := strings.CutPrefix(head, "Card")
		if !ok {
			return nil, challenge.Malformed("missing card header in %q", line)
		}

		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, challenge.Malformed("card id %q", idStr)
		}

		winStr, haveStr, ok := strings.Cut(body, "|")
		if !ok {
			return nil, challenge.Malformed("missing '|' in %q", line)
		}

		winning, err := challenge.Ints(winStr)
		if err != nil {
			return nil, err
		}

		have, err := challenge.Ints(haveStr)
		if err != nil {
			return nil, err
		}

		cards = append(cards, Card{ID: id, Winning: winning, Have: have})
	}

	return cards, nil
}
