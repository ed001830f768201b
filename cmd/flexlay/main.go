// SPDX-License-Identifier: Unlicense OR MIT

// Command flexlay solves flex layout scenarios and prints the resulting
// geometry.
//
// Usage:
//
//	flexlay solve [--png dir] [--scale n] [--baselines] [--debug] scenario.toml...
//
// Scenarios are solved concurrently. With --png, a debug rendering of
// every scenario is written to dir/<name>.png.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

func main() {
	if err := newRootCmd(os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "flexlay: %v\n", err)
		os.Exit(1)
	}
}

type cli struct {
	logger *slog.Logger
}

func newRootCmd(logw io.Writer) *cobra.Command {
	var verbose bool
	c := new(cli)
	root := &cobra.Command{
		Use:           "flexlay",
		Short:         "flexlay solves one-dimensional flex layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			c.logger = slog.New(newCharmHandler(newLogger(logw, level)))
			slog.SetDefault(c.logger)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(c.solveCommand())
	return root
}
