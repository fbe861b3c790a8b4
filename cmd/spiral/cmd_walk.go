package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiral/grid"
	"github.com/katalvlaran/spiral/gridtext"
	"github.com/katalvlaran/spiral/spiral"
)

var walkCmd = &cobra.Command{
	Use:   "walk <grid>",
	Short: "Walk a grid given as a literal",
	Long: `Walk one grid written as a bracketed literal and print its values.
The grid must have at least one row and one column, and all rows must
have the same length.

Usage:
  spiral walk '[[0, 1], [2, 3]]'          # prints: 0 1 3 2
  spiral walk --json '[[1, 2, 3]]'`,
	Args: cobra.ExactArgs(1),
	RunE: runWalk,
}

func runWalk(cmd *cobra.Command, args []string) error {
	cells, err := gridtext.Parse(args[0])
	if err != nil {
		return err
	}
	g, err := grid.New(cells)
	if err != nil {
		return fmt.Errorf("walk %s: %w", args[0], err)
	}
	t, err := spiral.FromGrid(g, spiral.WithContext(cmd.Context()), spiral.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("walk %s: %w", args[0], err)
	}
	seq, err := t.Traverse()
	if err != nil {
		return fmt.Errorf("walk %s: %w", args[0], err)
	}

	values := make([]int, 0, g.Rows()*g.Cols())
	for v := range seq {
		values = append(values, v)
	}
	if err := t.Err(); err != nil {
		return fmt.Errorf("walk %s: %w", args[0], err)
	}
	logger.Info("walked grid", "rows", g.Rows(), "cols", g.Cols(), "values", len(values))

	return writeResult(cmd.OutOrStdout(), result{Name: "grid", Grid: gridtext.Format(g.Cells()), Spiral: values})
}
