package rangeshift

// Apply maps every value covered by set through stage.
//
// Fragments split off an interval go back on the pending queue and are checked
// against the full rule list again, since a remainder may fall into a rule that
// was already scanned past. Every requeued fragment is a strict, non-empty
// sub-range of its parent, so the loop terminates.
func Apply(set Set, stage Stage) Set {
	out := make(Set, 0, len(set))
	pending := make([]Interval, 0, len(set))

	for _, iv := range set {
		if !iv.Empty() {
			pending = append(pending, iv)
		}
	}

next:
	for len(pending) > 0 {
		iv := pending[0]
		pending = pending[1:]

		for _, rule := range stage {
			if rule.Empty() {
				continue
			}

			switch Classify(rule.Interval, iv) {
			case NoOverlap:
				continue
			case RuleContainsInterval:
				out = append(out, iv.Shift(rule.By))
			case IntervalContainsRule:
				pending = append(pending,
					Interval{Start: iv.Start, End: rule.Start},
					Interval{Start: rule.End, End: iv.End},
				)
				out = append(out, rule.Shift(rule.By))
			case PartialLeft:
				pending = append(pending, Interval{Start: rule.End, End: iv.End})
				out = append(out, Interval{Start: iv.Start, End: rule.End}.Shift(rule.By))
			case PartialRight:
				pending = append(pending, Interval{Start: iv.Start, End: rule.Start})
				out = append(out, Interval{Start: rule.Start, End: iv.End}.Shift(rule.By))
			}

			continue next
		}

		out = append(out, iv)
	}

	return out
}
