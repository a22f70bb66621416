package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/config"
	"github.com/Sumatoshi-tech/advent/pkg/observability"
	"github.com/Sumatoshi-tech/advent/pkg/report"
	"github.com/Sumatoshi-tech/advent/pkg/runner"
	"github.com/Sumatoshi-tech/advent/pkg/solutions"
)

const plotFilePerm = 0o644

// ErrChallengesFailed is returned when at least one answer is wrong or
// could not be computed.
var ErrChallengesFailed = errors.New("challenges failed")

type registryProvider func() (*challenge.Registry, error)

// RunCommand holds the flags and dependencies of `advent run`.
type RunCommand struct {
	globals *Globals

	day        int
	part       int
	sample     bool
	inputs     string
	answers    string
	format     string
	repeat     int
	noColor    bool
	plotOut    string
	metricsOut string

	registryFn registryProvider
}

// NewRunCommand creates the run subcommand.
func NewRunCommand(g *Globals) *cobra.Command {
	return newRunCommandWithDeps(g, solutions.NewRegistry)
}

func newRunCommandWithDeps(g *Globals, registryFn registryProvider) *cobra.Command {
	rc := &RunCommand{globals: g, registryFn: registryFn}

	cmd := &cobra.Command{
		Use:   "run [KEY...]",
		Short: "Solve challenges and check the answers",
		Long: `Solve the selected challenges against their embedded samples, or against
real inputs (dayNN.txt) when an inputs directory is configured, and report
each answer with its verdict and timing.

Challenges may be named by key ("5/2", "05/1") instead of --day and --part.`,
		Args: cobra.ArbitraryArgs,
		RunE: rc.run,
	}

	cmd.Flags().IntVarP(&rc.day, "day", "d", 0, "only this day (0 = all)")
	cmd.Flags().IntVarP(&rc.part, "part", "p", 0, "only this part (0 = both)")
	cmd.Flags().BoolVar(&rc.sample, "sample", false, "use embedded samples even when an inputs directory is set")
	cmd.Flags().StringVar(&rc.inputs, "inputs", config.DefaultInputsDir, "directory holding dayNN.txt inputs")
	cmd.Flags().StringVar(&rc.answers, "answers", config.DefaultAnswersFile, "JSON or YAML file of expected answers")
	cmd.Flags().StringVarP(&rc.format, "format", "f", config.DefaultOutputFormat, "output format: table, json, yaml, plot")
	cmd.Flags().IntVar(&rc.repeat, "repeat", config.DefaultRunRepeat, "solve each challenge this many times")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", config.DefaultOutputNoColor, "disable colored output")
	cmd.Flags().StringVar(&rc.plotOut, "plot-out", "", "also write an HTML timing chart to this file")
	cmd.Flags().StringVar(&rc.metricsOut, "metrics-out", config.DefaultMetricsOut, "write Prometheus textfile metrics to this file")

	return cmd
}

// applyFlags overrides config values with flags the user set explicitly.
func (rc *RunCommand) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("inputs") {
		cfg.Inputs.Dir = rc.inputs
	}

	if flags.Changed("answers") {
		cfg.Answers.File = rc.answers
	}

	if flags.Changed("format") {
		cfg.Output.Format = rc.format
	}

	if flags.Changed("repeat") {
		cfg.Run.Repeat = rc.repeat
	}

	if flags.Changed("no-color") {
		cfg.Output.NoColor = rc.noColor
	}

	if flags.Changed("metrics-out") {
		cfg.Telemetry.MetricsOut = rc.metricsOut
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	return nil
}

func (rc *RunCommand) run(cmd *cobra.Command, args []string) (err error) {
	cfg, err := rc.globals.loadConfig()
	if err != nil {
		return err
	}

	if err := rc.applyFlags(cmd, cfg); err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	providers, err := rc.globals.startTelemetry(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer shutdown(ctx, providers, &err)

	registry, err := rc.registryFn()
	if err != nil {
		return fmt.Errorf("register challenges: %w", err)
	}

	selected, err := rc.selectChallenges(registry, args)
	if err != nil {
		return err
	}

	answers, err := runner.LoadAnswers(cfg.Answers.File)
	if err != nil {
		return err
	}

	metrics, err := observability.NewSolverMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("create solver metrics: %w", err)
	}

	r := &runner.Runner{
		Source:  rc.source(cfg),
		Answers: answers,
		Repeat:  cfg.Run.Repeat,
		Logger:  providers.Logger,
		Tracer:  providers.Tracer,
		Metrics: metrics,
	}

	providers.Logger.DebugContext(ctx, "starting run",
		"challenges", len(selected), "inputs", cfg.Inputs.Dir, "sample", rc.sample, "repeat", cfg.Run.Repeat)

	summary, runErr := r.Run(ctx, selected)

	opts := report.Options{Format: format, NoColor: cfg.Output.NoColor, Verbose: rc.globals != nil && rc.globals.Verbose}
	if err := report.Render(cmd.OutOrStdout(), summary, opts); err != nil {
		return errors.Join(runErr, err)
	}

	if rc.plotOut != "" {
		if err := writePlot(rc.plotOut, summary); err != nil {
			return errors.Join(runErr, err)
		}
	}

	if runErr != nil {
		return runErr
	}

	if !summary.OK() {
		return fmt.Errorf("%w: %d of %d", ErrChallengesFailed, summary.Failed(), len(summary.Results))
	}

	return nil
}

// selectChallenges resolves keys given as arguments, or --day and --part
// when there are none.
func (rc *RunCommand) selectChallenges(registry *challenge.Registry, args []string) ([]challenge.Challenge, error) {
	if len(args) == 0 {
		return registry.Select(rc.day, rc.part)
	}

	selected := make([]challenge.Challenge, 0, len(args))

	for _, arg := range args {
		key, err := challenge.ParseKey(arg)
		if err != nil {
			return nil, err
		}

		c, ok := registry.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", challenge.ErrNoMatch, key)
		}

		selected = append(selected, c)
	}

	return selected, nil
}

func (rc *RunCommand) source(cfg *config.Config) runner.Source {
	if rc.sample || cfg.Inputs.Dir == "" {
		return runner.SampleSource{}
	}

	return runner.DirSource{Dir: cfg.Inputs.Dir}
}

func writePlot(path string, summary runner.Summary) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, plotFilePerm)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close plot file: %w", closeErr))
		}
	}()

	return report.Render(f, summary, report.Options{Format: report.FormatPlot})
}
