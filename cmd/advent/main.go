// Package main is the entry point of the advent CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/advent/cmd/advent/commands"
	"github.com/Sumatoshi-tech/advent/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: load .env: %v\n", err)
	}

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	g := &commands.Globals{}

	rootCmd := &cobra.Command{
		Use:   "advent",
		Short: "Advent of Code 2023 solutions and range-shift engine",
		Long: `advent solves Advent of Code 2023 puzzles and checks the answers.

Commands:
  run       Solve challenges and report verdicts and timings
  list      List registered challenges
  shift     Apply an almanac to seed ranges`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "config file (default: advent.yaml in ., ./config, $HOME/.config/advent)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.Quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(commands.NewRunCommand(g))
	rootCmd.AddCommand(commands.NewListCommand(g))
	rootCmd.AddCommand(commands.NewShiftCommand(g))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
