package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricSolverRuns     = "advent.solver.runs.total"
	metricSolverDuration = "advent.solver.duration.seconds"

	attrChallenge = "challenge"
	attrStatus    = "status"
)

// solveBucketBoundaries spans 10µs to 10s; most solvers finish in milliseconds.
var solveBucketBoundaries = []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10}

// SolverMetrics holds the instruments recorded for every solve.
type SolverMetrics struct {
	runs     metric.Int64Counter
	duration metric.Float64Histogram
}

// NewSolverMetrics creates the solver instruments from mt.
func NewSolverMetrics(mt metric.Meter) (*SolverMetrics, error) {
	runs, err := mt.Int64Counter(metricSolverRuns,
		metric.WithDescription("Solver invocations by challenge and outcome"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSolverRuns, err)
	}

	duration, err := mt.Float64Histogram(metricSolverDuration,
		metric.WithDescription("Wall time of a single solve in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(solveBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSolverDuration, err)
	}

	return &SolverMetrics{runs: runs, duration: duration}, nil
}

// RecordSolve records one solve. Safe to call on a nil receiver.
func (sm *SolverMetrics) RecordSolve(ctx context.Context, challenge, status string, elapsed time.Duration) {
	if sm == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(attrChallenge, challenge),
		attribute.String(attrStatus, status),
	)

	sm.runs.Add(ctx, 1, attrs)
	sm.duration.Record(ctx, elapsed.Seconds(), attrs)
}
