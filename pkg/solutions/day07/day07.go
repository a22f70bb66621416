// Package day07 solves "Camel Cards": rank poker-like hands and sum winnings.
package day07

import (
	"cmp"
	"context"
	_ "embed"
	"slices"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
)

const day = 7

//go:embed input/sample.txt
var sample string

// Kind is the category of a hand, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (k Kind) String() string {
	if k < HighCard || k > FiveOfAKind {
		return "unknown"
	}

	return kindNames[k]
}

// Rules defines card strengths and whether 'J' is a joker.
type Rules struct {
	order  string
	jokers bool
}

var (
	// Standard ranks J as a jack.
	Standard = Rules{order: "23456789TJQKA"}
	// Jokers ranks J lowest and lets it stand in for any card.
	Jokers = Rules{order: "J23456789TQKA", jokers: true}
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
}

// Kind classifies the hand under r.
func (r Rules) Kind(cards string) Kind {
	var counts [256]int

	wild := 0

	for i := range len(cards) {
		if r.jokers && cards[i] == 'J' {
			wild++

			continue
		}

		counts[cards[i]]++
	}

	groups := make([]int, 0, len(cards))

	for _, n := range counts {
		if n > 0 {
			groups = append(groups, n)
		}
	}

	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })

	for len(groups) < 2 {
		groups = append(groups, 0)
	}

	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders hands by kind, then card by card from the left.
func (r Rules) Compare(a, b string) int {
	if c := cmp.Compare(r.Kind(a), r.Kind(b)); c != 0 {
		return c
	}

	for i := range min(len(a), len(b)) {
		if c := cmp.Compare(strings.IndexByte(r.order, a[i]), strings.IndexByte(r.order, b[i])); c != 0 {
			return c
		}
	}

	return 0
}

// Winnings sums bid times rank, weakest hand ranked 1.
func (r Rules) Winnings(hands []Hand) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return r.Compare(a.Cards, b.Cards) })

	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}

	return total
}

// Part1 plays with jacks.
type Part1 struct{}

func (Part1) Day() int  { return day }
func (Part1) Part() int { return 1 }

func (Part1) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "6440"}
}

func (Part1) Solve(_ context.Context, in challenge.Input) (string, error) {
	return solve(in.Text, Standard)
}

// Part2 plays with jokers.
type Part2 struct{}

func (Part2) Day() int  { return day }
func (Part2) Part() int { return 2 }

func (Part2) Sample() challenge.Sample {
	return challenge.Sample{Input: sample, Want: "5905"}
}

func (Part2) Solve(_ context.Context, in challenge.Input) (string, error) {
	return solve(in.Text, Jokers)
}

func solve(text string, r Rules) (string, error) {
	hands, err := ParseHands(text, r)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(r.Winnings(hands)), nil
}

// ParseHands reads "CARDS BID" lines, rejecting cards r does not know.
func ParseHands(text string, r Rules) ([]Hand, error) {
	lines := challenge.Lines(text)
	hands := make([]Hand, 0, len(lines))

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, challenge.Malformed("hand %q", line)
		}

		cards := fields[0]
		if len(cards) != 5 {
			return nil, challenge.Malformed("hand %q must have five cards", cards)
		}

		for i := range len(cards) {
			if strings.IndexByte(r.order, cards[i]) < 0 {
				return nil, challenge.Malformed("card %q in %q", cards[i], cards)
			}
		}

		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, challenge.Malformed("bid %q", fields[1])
		}

		hands = append(hands, Hand{Cards: cards, Bid: bid})
	}

	return hands, nil
}
