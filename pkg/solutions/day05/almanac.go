package day05

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/rangeshift"
)

// Map is one "X-to-Y map:" section.
type Map struct {
	From  string
	To    string
	Rules rangeshift.Stage
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []uint64
	Maps  []Map
}

// Pipeline returns the stages in file order.
func (a Almanac) Pipeline() rangeshift.Pipeline {
	p := make(rangeshift.Pipeline, len(a.Maps))
	for i, m := range a.Maps {
		p[i] = m.Rules
	}

	return p
}

// SeedPoints treats every seed number as a single value. math.MaxUint64 has
// no half-open interval and is rejected.
func (a Almanac) SeedPoints() (rangeshift.Set, error) {
	set := make(rangeshift.Set, len(a.Seeds))
	for i, s := range a.Seeds {
		if s == math.MaxUint64 {
			return nil, challenge.Malformed("seed %d out of range", s)
		}

		set[i] = rangeshift.Span(s, 1)
	}

	return set, nil
}

// SeedRanges reads the seed numbers as (start, length) pairs.
func (a Almanac) SeedRanges() (rangeshift.Set, error) {
	return Pairs(a.Seeds)
}

// Pairs turns a flat list of (start, length) numbers into intervals. A range
// whose end does not fit in uint64 is malformed.
func Pairs(nums []uint64) (rangeshift.Set, error) {
	if len(nums)%2 != 0 {
		return nil, challenge.Malformed("odd number of seed values: %d", len(nums))
	}

	set := make(rangeshift.Set, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		start, length := nums[i], nums[i+1]
		if start > math.MaxUint64-length {
			return nil, challenge.Malformed("seed range %d+%d out of range", start, length)
		}

		set = append(set, rangeshift.Span(start, length))
	}

	return set, nil
}

// ParseAlmanac parses the seeds line followed by blank-line separated maps.
// The seeds line may be omitted; maps must chain (each To is the next From)
// and no two rules of one map may overlap.
func ParseAlmanac(text string) (Almanac, error) {
	var a Almanac

	blocks := challenge.Blocks(text)
	if len(blocks) > 0 {
		if rest, ok := strings.CutPrefix(blocks[0][0], "seeds:"); ok {
			if len(blocks[0]) != 1 {
				return Almanac{}, challenge.Malformed("unexpected lines after seeds")
			}

			seeds, err := challenge.Uints(rest)
			if err != nil {
				return Almanac{}, err
			}

			a.Seeds = seeds
			blocks = blocks[1:]
		}
	}

	for _, block := range blocks {
		m, err := parseMap(block)
		if err != nil {
			return Almanac{}, err
		}

		if n := len(a.Maps); n > 0 && a.Maps[n-1].To != m.From {
			return Almanac{}, challenge.Malformed("map %s-to-%s does not follow %s", m.From, m.To, a.Maps[n-1].To)
		}

		a.Maps = append(a.Maps, m)
	}

	return a, nil
}

func parseMap(block []string) (Map, error) {
	name, ok := strings.CutSuffix(block[0], " map:")
	if !ok {
		return Map{}, challenge.Malformed("map header %q", block[0])
	}

	from, to, ok := strings.Cut(name, "-to-")
	if !ok {
		return Map{}, challenge.Malformed("map header %q", block[0])
	}

	m := Map{From: from, To: to}

	for _, line := range block[1:] {
		nums, err := challenge.Uints(line)
		if err != nil {
			return Map{}, err
		}

		if len(nums) != 3 {
			return Map{}, challenge.Malformed("rule %q needs three numbers", line)
		}

		if !representable(nums[0], nums[1], nums[2]) {
			return Map{}, challenge.Malformed("rule %q overflows", line)
		}

		m.Rules = append(m.Rules, rangeshift.NewRule(nums[0], nums[1], nums[2]))
	}

	if err := checkDisjoint(m); err != nil {
		return Map{}, err
	}

	return m, nil
}

// representable reports whether the rule's ranges fit in uint64 and its
// offset fits in int64.
func representable(dest, src, length uint64) bool {
	if src > math.MaxUint64-length || dest > math.MaxUint64-length {
		return false
	}

	if dest >= src {
		return dest-src <= math.MaxInt64
	}

	return src-dest <= math.MaxInt64+1
}

func checkDisjoint(m Map) error {
	sorted := slices.Clone(m.Rules)
	slices.SortFunc(sorted, func(a, b rangeshift.Rule) int { return cmp.Compare(a.Start, b.Start) })

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if !prev.Empty() && !cur.Empty() && cur.Start < prev.End {
			return challenge.Malformed("%s-to-%s rules %s and %s overlap", m.From, m.To, prev, cur)
		}
	}

	return nil
}
