// Package runner solves challenges against sample or real input, times them,
// and compares the answers with what is expected.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
	"gonum.org/v1/gonum/stat"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/observability"
)

// Status is the verdict for one challenge.
type Status string

const (
	Pass      Status = "pass"
	Fail      Status = "fail"
	Unchecked Status = "unchecked"
	Error     Status = "error"
)

// Result is the outcome of solving one challenge.
type Result struct {
	Key    challenge.Key
	Title  string
	Answer string
	// Want is empty when no expected answer is known.
	Want   string
	Status Status
	Sample bool

	// Elapsed is the duration of the first solve; Mean and StdDev cover all Runs.
	Elapsed time.Duration
	Mean    time.Duration
	StdDev  time.Duration
	Runs    int

	Err error
}

// Summary collects the results of a run in execution order.
type Summary struct {
	Results []Result
	Total   time.Duration
}

// Passed counts results with status Pass.
func (s Summary) Passed() int {
	return s.count(Pass)
}

// Failed counts results with status Fail or Error.
func (s Summary) Failed() int {
	return s.count(Fail) + s.count(Error)
}

// OK reports whether nothing failed.
func (s Summary) OK() bool {
	return s.Failed() == 0
}

func (s Summary) count(st Status) int {
	n := 0

	for _, r := range s.Results {
		if r.Status == st {
			n++
		}
	}

	return n
}

// Runner solves challenges one at a time. The zero value solves samples once
// with no telemetry.
type Runner struct {
	Source  Source
	Answers Answers
	// Repeat is how many times each challenge is solved. Values below 1 mean 1.
	Repeat  int

	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.SolverMetrics
}

// Run solves cs in order. The first input or solver error stops the run; the
// failing result is still part of the returned Summary.
func (r *Runner) Run(ctx context.Context, cs []challenge.Challenge) (Summary, error) {
	start := time.Now()

	var summary Summary

	for _, c := range cs {
		if err := ctx.Err(); err != nil {
			summary.Total = time.Since(start)

			return summary, fmt.Errorf("run cancelled: %w", err)
		}

		res, err := r.solve(ctx, c)
		summary.Results = append(summary.Results, res)

		if err != nil {
			summary.Total = time.Since(start)

			return summary, fmt.Errorf("%s: %w", res.Title, err)
		}
	}

	summary.Total = time.Since(start)

	r.logger().InfoContext(ctx, "run finished",
		"challenges", len(summary.Results),
		"passed", summary.Passed(),
		"failed", summary.Failed(),
		"total", summary.Total)

	return summary, nil
}

func (r *Runner) solve(ctx context.Context, c challenge.Challenge) (Result, error) {
	key := challenge.KeyOf(c)
	res := Result{Key: key, Title: challenge.Title(c)}

	ctx, span := r.tracer().Start(ctx, "advent.solve", trace.WithAttributes(
		attribute.Int("advent.day", key.Day),
		attribute.Int("advent.part", key.Part),
	))
	defer span.End()

	in, err := r.source().Input(c)
	if err != nil {
		return r.fail(ctx, span, res, err), err
	}

	res.Sample = in.Sample
	res.Want = r.want(c, in)

	durations := make([]float64, 0, r.repeat())

	for i := range r.repeat() {
		t0 := time.Now()
		answer, err := c.Solve(ctx, in)
		elapsed := time.Since(t0)

		durations = append(durations, elapsed.Seconds())

		if err != nil {
			res.Elapsed = elapsed
			res.Runs = i + 1

			return r.fail(ctx, span, res, err), err
		}

		if i == 0 {
			res.Answer = answer
			res.Elapsed = elapsed
		}
	}

	res.Runs = len(durations)
	res.Mean, res.StdDev = spread(durations)
	res.Status = verdict(res.Answer, res.Want)

	span.SetAttributes(attribute.String("advent.status", string(res.Status)))
	r.Metrics.RecordSolve(ctx, key.String(), string(res.Status), res.Elapsed)

	log := r.logger().With("challenge", key.String(), "answer", res.Answer, "elapsed", res.Elapsed)
	if res.Status == Fail {
		log.WarnContext(ctx, "wrong answer", "want", res.Want)
	} else {
		log.DebugContext(ctx, "solved", "status", res.Status, "runs", res.Runs)
	}

	return res, nil
}

func (r *Runner) fail(ctx context.Context, span trace.Span, res Result, err error) Result {
	res.Status = Error
	res.Err = err

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	r.Metrics.RecordSolve(ctx, res.Key.String(), string(Error), res.Elapsed)
	r.logger().ErrorContext(ctx, "solve failed", "challenge", res.Key.String(), "error", err)

	return res
}

func (r *Runner) want(c challenge.Challenge, in challenge.Input) string {
	if in.Sample {
		return c.Sample().Want
	}

	want, _ := r.Answers.Lookup(challenge.KeyOf(c))

	return want
}

func verdict(answer, want string) Status {
	switch {
	case want == "":
		return Unchecked
	case answer == want:
		return Pass
	default:
		return Fail
	}
}

// spread returns the mean and sample standard deviation of seconds.
func spread(seconds []float64) (time.Duration, time.Duration) {
	mean, std := stat.MeanStdDev(seconds, nil)
	if math.IsNaN(std) {
		std = 0
	}

	return toDuration(mean), toDuration(std)
}

func toDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func (r *Runner) repeat() int {
	return max(r.Repeat, 1)
}

func (r *Runner) source() Source {
	if r.Source == nil {
		return SampleSource{}
	}

	return r.Source
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return r.Logger
}

func (r *Runner) tracer() trace.Tracer {
	if r.Tracer == nil {
		return nooptrace.NewTracerProvider().Tracer("advent")
	}

	return r.Tracer
}
