package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiral/gridtext"
	"github.com/katalvlaran/spiral/spiral"
)

// demoGrids are the sample grids printed by `spiral demo`.
var demoGrids = [][][]int{
	{{1}},
	{{0, 1}, {2, 3}},
	{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk the built-in sample grids",
	Long: `Walk three sample grids and print, for each, the grid literal, one
visited value per line, and a blank line.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for i, cells := range demoGrids {
		values, err := spiral.Walk(cells, spiral.WithContext(cmd.Context()), spiral.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("demo grid %d: %w", i+1, err)
		}
		if rootFlags.json {
			r := result{Name: fmt.Sprintf("demo-%d", i+1), Grid: gridtext.Format(cells), Spiral: values}
			if err := writeResult(out, r); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, gridtext.Format(cells))
		for _, v := range values {
			fmt.Fprintln(out, v)
		}
		fmt.Fprintln(out)
	}

	return nil
}
