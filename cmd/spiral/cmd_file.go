package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spiral/gridfile"
	"github.com/katalvlaran/spiral/gridtext"
	"github.com/katalvlaran/spiral/spiral"
)

var fileFlags struct {
	workers int
}

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Walk every grid of a YAML or JSON document",
	Long: `Walk the grids listed in a YAML or JSON document:

  grids:
    - name: square
      cells: [[0, 1], [2, 3]]

Grids are traversed concurrently and printed in document order.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	fileCmd.Flags().IntVar(&fileFlags.workers, "workers", 0, "Concurrent traversals (default: $SPIRAL_WORKERS or 4)")
}

func runFile(cmd *cobra.Command, args []string) error {
	doc, err := gridfile.Load(args[0])
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if fileFlags.workers > 0 {
		workers = fileFlags.workers
	}

	results := make([]result, len(doc.Grids))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, e := range doc.Grids {
		g.Go(func() error {
			values, err := spiral.Walk(e.Cells, spiral.WithContext(ctx), spiral.WithLogger(logger.With("grid", e.Name)))
			if err != nil {
				return fmt.Errorf("grid %q: %w", e.Name, err)
			}
			results[i] = result{Name: e.Name, Grid: gridtext.Format(e.Cells), Spiral: values}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("walked document", "path", args[0], "grids", len(results), "workers", workers)

	out := cmd.OutOrStdout()
	for _, r := range results {
		if err := writeResult(out, r); err != nil {
			return err
		}
	}

	return nil
}
