// Package rangeshift applies piecewise offsets to sets of half-open intervals.
//
// A Stage is a list of Rules with mutually non-overlapping domains. Applying a
// stage to a Set maps every value v covered by the set to v+By of the rule whose
// domain contains v, or leaves it unchanged when no rule does. Input intervals
// are split at rule boundaries as needed; the output is never merged.
package rangeshift

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Sumatoshi-tech/advent/pkg/safeconv"
)

// Interval is the half-open range [Start, End). Start <= End is a precondition.
type Interval struct {
	Start uint64
	End   uint64
}

// Span returns the interval of length values starting at start.
func Span(start, length uint64) Interval {
	return Interval{Start: start, End: start + length}
}

// Len returns the number of values in the interval.
func (iv Interval) Len() uint64 {
	return iv.End - iv.Start
}

// Empty reports whether the interval denotes no values.
func (iv Interval) Empty() bool {
	return iv.Start >= iv.End
}

// Contains reports whether v lies in [Start, End).
func (iv Interval) Contains(v uint64) bool {
	return v >= iv.Start && v < iv.End
}

// Shift moves both ends by by. It panics if either end leaves the uint64 range.
func (iv Interval) Shift(by int64) Interval {
	return Interval{
		Start: safeconv.MustAddSigned(iv.Start, by),
		End:   safeconv.MustAddSigned(iv.End, by),
	}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

// Rule maps every value in its domain to value + By.
type Rule struct {
	Interval

	By int64
}

// NewRule builds a rule from a (destination, source, length) triple.
func NewRule(dest, src, length uint64) Rule {
	return Rule{
		Interval: Span(src, length),
		By:       safeconv.MustDiff(dest, src),
	}
}

func (r Rule) String() string {
	return fmt.Sprintf("%s%+d", r.Interval, r.By)
}

// Set is an unordered collection of intervals. Overlaps and duplicates are kept.
type Set []Interval

// Min returns the smallest start over all non-empty intervals.
func (s Set) Min() (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)

	for _, iv := range s {
		if iv.Empty() {
			continue
		}

		if !found || iv.Start < lowest {
			lowest = iv.Start
			found = true
		}
	}

	return lowest, found
}

// Points returns the total number of values covered, counting overlaps once per interval.
func (s Set) Points() uint64 {
	var n uint64
	for _, iv := range s {
		n += iv.Len()
	}

	return n
}

// Merge returns a sorted copy of s with overlapping and adjacent intervals coalesced.
// Empty intervals are dropped.
func (s Set) Merge() Set {
	sorted := make(Set, 0, len(s))
	for _, iv := range s {
		if !iv.Empty() {
			sorted = append(sorted, iv)
		}
	}

	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}

		return cmp.Compare(a.End, b.End)
	})

	merged := sorted[:0]

	for _, iv := range sorted {
		last := len(merged) - 1
		if last >= 0 && iv.Start <= merged[last].End {
			merged[last].End = max(merged[last].End, iv.End)

			continue
		}

		merged = append(merged, iv)
	}

	return merged
}

// Stage is one pipeline phase: rules whose domains do not overlap each other.
type Stage []Rule
