// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"flexlay.org/debugpaint"
	"flexlay.org/internal/scenario"
	"flexlay.org/layout"
)

type solveOpts struct {
	pngDir    string
	scale     float64
	baselines bool
	debug     bool
}

// solution is a laid out scenario.
type solution struct {
	name  string
	root  *layout.Node
	dims  layout.Dimensions
	stats layout.Stats
	png   string
}

func (c *cli) solveCommand() *cobra.Command {
	var opts solveOpts
	cmd := &cobra.Command{
		Use:   "solve [scenario.toml...]",
		Short: "Lay out scenarios and print their geometry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sols, err := c.solveAll(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			for _, s := range sols {
				printSolution(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.pngDir, "png", "", "write a debug rendering of each scenario to `dir`")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "scale factor of the debug renderings")
	cmd.Flags().BoolVar(&opts.baselines, "baselines", false, "draw container baselines in the debug renderings")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log every flex layout at debug level")
	return cmd
}

// solveAll solves the scenario files concurrently. The solutions are
// in the order of files.
func (c *cli) solveAll(ctx context.Context, files []string, opts solveOpts) ([]*solution, error) {
	if opts.pngDir != "" {
		if err := os.MkdirAll(opts.pngDir, 0o755); err != nil {
			return nil, err
		}
	}
	sols := make([]*solution, len(files))
	builds, ctx := errgroup.WithContext(ctx)
	builds.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		builds.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := c.solve(path, opts)
			if err != nil {
				return err
			}
			sols[i] = s
			return nil
		})
	}
	if err := builds.Wait(); err != nil {
		return nil, err
	}
	return sols, nil
}

func (c *cli) solve(path string, opts solveOpts) (*solution, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	root, err := sc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	// Each scenario has its own layout context.
	gtx := sc.Context()
	gtx.Logger = logger.With("scenario", sc.Name)
	gtx.Debug = gtx.Debug || opts.debug
	dims := gtx.Layout(root, sc.Constraints)
	gtx.Logger.Debug("solved", "size", dims.Size, "baseline", dims.Baseline, "measured", gtx.Stats.Measured)

	s := &solution{
		name:  sc.Name,
		root:  root,
		dims:  dims,
		stats: gtx.Stats,
	}
	if opts.pngDir == "" {
		return s, nil
	}
	img, err := debugpaint.Draw(root, sc.Theme, debugpaint.Options{
		Scale:     opts.scale,
		Baselines: opts.baselines,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.png = filepath.Join(opts.pngDir, sc.Name+".png")
	f, err := os.Create(s.png)
	if err != nil {
		return nil, err
	}
	if err := debugpaint.Encode(f, img); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return s, nil
}
