package rangeshift

// Overlap describes how a rule domain relates to an interval.
type Overlap int

// Overlap classes.
const (
	// NoOverlap means the rule is entirely left or right of the interval, touching included.
	NoOverlap Overlap = iota
	// RuleContainsInterval means the rule covers the whole interval.
	RuleContainsInterval
	// IntervalContainsRule means both rule ends lie strictly inside the interval.
	IntervalContainsRule
	// PartialLeft means the rule covers the interval's start but not its end.
	PartialLeft
	// PartialRight means the rule covers the interval's end but not its start.
	PartialRight
)

var overlapNames = [...]string{
	NoOverlap:            "no-overlap",
	RuleContainsInterval: "rule-contains-interval",
	IntervalContainsRule: "interval-contains-rule",
	PartialLeft:          "partial-left",
	PartialRight:         "partial-right",
}

func (o Overlap) String() string {
	if o < 0 || int(o) >= len(overlapNames) {
		return "unknown"
	}

	return overlapNames[o]
}

// Classify compares the four boundary pairs of rule and iv. Both must be non-empty.
func Classify(rule, iv Interval) Overlap {
	switch {
	case rule.End <= iv.Start, rule.Start >= iv.End:
		return NoOverlap
	case rule.Start <= iv.Start && rule.End >= iv.End:
		return RuleContainsInterval
	case rule.Start <= iv.Start:
		return PartialLeft
	case rule.End < iv.End:
		return IntervalContainsRule
	default:
		return PartialRight
	}
}
