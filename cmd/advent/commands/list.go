package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/advent/pkg/challenge"
	"github.com/Sumatoshi-tech/advent/pkg/runner"
	"github.com/Sumatoshi-tech/advent/pkg/solutions"
)

const (
	inputPresent = "yes"
	inputAbsent  = "-"
)

// NewListCommand creates the list subcommand.
func NewListCommand(g *Globals) *cobra.Command {
	return newListCommandWithDeps(g, solutions.NewRegistry)
}

func newListCommandWithDeps(g *Globals, registryFn registryProvider) *cobra.Command {
	var inputs string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("inputs") {
				cfg.Inputs.Dir = inputs
			}

			registry, err := registryFn()
			if err != nil {
				return fmt.Errorf("register challenges: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), listTable(registry.All(), cfg.Inputs.Dir))

			return err
		},
	}

	cmd.Flags().StringVar(&inputs, "inputs", "", "directory holding dayNN.txt inputs")

	return cmd
}

func listTable(cs []challenge.Challenge, inputsDir string) string {
	src := runner.DirSource{Dir: inputsDir}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault

	header := table.Row{"Key", "Challenge", "Sample", "Sample answer"}
	if inputsDir != "" {
		header = append(header, "Input")
	}

	tbl.AppendHeader(header)

	for _, c := range cs {
		s := c.Sample()
		row := table.Row{
			challenge.KeyOf(c).String(),
			challenge.Title(c),
			humanize.Bytes(uint64(len(s.Input))),
			s.Want,
		}

		if inputsDir != "" {
			mark := inputAbsent
			if src.Has(c) {
				mark = inputPresent
			}

			row = append(row, mark)
		}

		tbl.AppendRow(row)
	}

	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%d challenges", len(cs))})

	return tbl.Render()
}
