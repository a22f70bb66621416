package rangeshift

import "github.com/Sumatoshi-tech/advent/pkg/safeconv"

// Pipeline is an ordered sequence of stages.
type Pipeline []Stage

// Run threads seeds through every stage in order. The input set is not modified.
func (p Pipeline) Run(seeds Set) Set {
	current := seeds
	for _, stage := range p {
		current = Apply(current, stage)
	}

	return current
}

// Lowest returns the minimum start of the set produced by Run.
// It reports false when nothing survives, which only happens for empty seeds.
func (p Pipeline) Lowest(seeds Set) (uint64, bool) {
	return p.Run(seeds).Min()
}

// Map sends a single value through every stage.
func (p Pipeline) Map(v uint64) uint64 {
	for _, stage := range p {
		for _, rule := range stage {
			if rule.Contains(v) {
				v = safeconv.MustAddSigned(v, rule.By)

				break
			}
		}
	}

	return v
}
