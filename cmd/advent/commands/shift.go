package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/rangeshift"
	"github.com/Sumatoshi-tech/advent/pkg/solutions/day05"
)

// ErrNoSeeds is returned when neither the almanac nor --seeds lists any seed.
var ErrNoSeeds = errors.New("no seeds: pass --seeds or include a seeds line")

const stdinArg = "-"

// NewShiftCommand creates the shift subcommand.
func NewShiftCommand(g *Globals) *cobra.Command {
	var o shiftOptions

	cmd := &cobra.Command{
		Use:   "shift FILE|-",
		Short: "Push seed ranges through an almanac with the range-shift engine",
		Long: `Read an almanac of "X-to-Y map:" sections from FILE (or stdin with "-"),
apply every map in order to the seed ranges, and print the resulting
intervals and their minimum.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			providers, err := g.startTelemetry(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer shutdown(ctx, providers, &err)

			almanacText, err := readAlmanac(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			return shift(ctx, cmd.OutOrStdout(), providers.Logger, almanacText, o)
		},
	}

	cmd.Flags().StringVar(&o.seeds, "seeds", "", `seed values, e.g. "79 14 55 13" (overrides the almanac's seeds line)`)
	cmd.Flags().BoolVar(&o.points, "points", false, "treat seeds as single values instead of (start, length) pairs")
	cmd.Flags().BoolVar(&o.stages, "stages", false, "print the interval count after every map")
	cmd.Flags().BoolVar(&o.merge, "merge", false, "merge overlapping and adjacent output intervals")

	return cmd
}

type shiftOptions struct {
	seeds  string
	points bool
	stages bool
	merge  bool
}

func readAlmanac(stdin io.Reader, arg string) (string, error) {
	if arg == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read almanac: %w", err)
	}

	return string(data), nil
}

func shift(ctx context.Context, w io.Writer, logger *slog.Logger, almanacText string, o shiftOptions) error {
	almanac, err := day05.ParseAlmanac(almanacText)
	if err != nil {
		return err
	}

	if o.seeds != "" {
		almanac.Seeds, err = challenge.Uints(o.seeds)
		if err != nil {
			return fmt.Errorf("--seeds: %w", err)
		}
	}

	if len(almanac.Seeds) == 0 {
		return ErrNoSeeds
	}

	seedSet := almanac.SeedRanges
	if o.points {
		seedSet = almanac.SeedPoints
	}

	set, err := seedSet()
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "seeds parsed", "intervals", len(set), "maps", len(almanac.Maps), "points", o.points)

	if o.stages {
		fmt.Fprintf(w, "%-28s %d intervals\n", "seeds", len(set))
	}

	for _, m := range almanac.Maps {
		set = rangeshift.Apply(set, m.Rules)

		name := m.From + "-to-" + m.To
		logger.DebugContext(ctx, "applied map", "map", name, "rules", len(m.Rules), "intervals", len(set))

		if o.stages {
			fmt.Fprintf(w, "%-28s %d intervals\n", name, len(set))
		}
	}

	if o.merge {
		set = set.Merge()
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"Interval", "Values"})

	for _, iv := range set {
		tbl.AppendRow(table.Row{iv.String(), strconv.FormatUint(iv.Len(), 10)})
	}

	footer := table.Row{"lowest", "-"}
	if lowest, ok := set.Min(); ok {
		footer = table.Row{"lowest", strconv.FormatUint(lowest, 10)}
	}

	tbl.AppendFooter(footer)

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("write intervals: %w", err)
	}

	return nil
}
