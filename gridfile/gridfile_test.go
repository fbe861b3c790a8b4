package gridfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiral/grid"
	"github.com/katalvlaran/spiral/gridfile"
)

const sample = `
grids:
  - name: single
    cells:
      - [1]
  - cells:
      - [0, 1]
      - [2, 3]
`

// TestDecode_YAML reads a two-grid document and names the unnamed entry.
func TestDecode_YAML(t *testing.T) {
	doc, err := gridfile.Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, doc.Grids, 2)
	require.Equal(t, "single", doc.Grids[0].Name)
	require.Equal(t, [][]int{{1}}, doc.Grids[0].Cells)
	require.Equal(t, "grid-2", doc.Grids[1].Name)
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, doc.Grids[1].Cells)
}

// TestDecode_JSON checks that JSON documents are accepted.
func TestDecode_JSON(t *testing.T) {
	doc, err := gridfile.Decode(strings.NewReader(`{"grids": [{"name": "row", "cells": [[1, 2, 3]]}]}`))
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}}, doc.Grids[0].Cells)
}

// TestDecode_Errors covers empty documents, bad shapes and unknown fields.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"EmptyDocument", "", gridfile.ErrNoGrids},
		{"NoGrids", "grids: []", gridfile.ErrNoGrids},
		{"EmptyCells", "grids: [{name: e, cells: []}]", grid.ErrEmptyGrid},
		{"Ragged", "grids: [{name: r, cells: [[1, 2], [3]]}]", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridfile.Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridfile.Decode(strings.NewReader("grids: [{name: x, cells: [[1]], extra: 1}]"))
	require.Error(t, err)
	_, err = gridfile.Decode(strings.NewReader("grids: [{cells: [[a]]}]"))
	require.Error(t, err)
}

// TestLoad reads a document from disk and reports missing files.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grids.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	doc, err := gridfile.Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Grids, 2)

	_, err = gridfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
