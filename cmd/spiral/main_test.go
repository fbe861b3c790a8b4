package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiral/grid"
	"github.com/katalvlaran/spiral/gridtext"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	rootFlags.logLevel, rootFlags.envFile, rootFlags.json = "", "", false
	fileFlags.workers = 0
	t.Setenv("SPIRAL_LOG_LEVEL", "warn")
	t.Setenv("SPIRAL_WORKERS", "2")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	want := strings.Join([]string{
		"[[1]]", "1", "",
		"[[0, 1], [2, 3]]", "0", "1", "3", "2", "",
		"[[0, 1, 2], [3, 4, 5], [6, 7, 8]]", "0", "1", "2", "5", "8", "7", "6", "3", "4", "",
	}, "\n") + "\n"
	require.Equal(t, want, out)
}

func TestDemo_JSON(t *testing.T) {
	out, _, err := execute(t, "--json", "demo")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var r result
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &r))
	require.Equal(t, "demo-3", r.Name)
	require.Equal(t, []int{0, 1, 2, 5, 8, 7, 6, 3, 4}, r.Spiral)
}

func TestWalk(t *testing.T) {
	out, _, err := execute(t, "walk", "[[0,1],[2,3]]")
	require.NoError(t, err)
	require.Equal(t, "grid [[0, 1], [2, 3]]\n0 1 3 2\n", out)
}

func TestWalk_DebugLogsTurns(t *testing.T) {
	_, errOut, err := execute(t, "--log-level", "debug", "walk", "[[0,1],[2,3]]")
	require.NoError(t, err)
	require.Contains(t, errOut, "spiral: turn")
	require.Contains(t, errOut, "walked grid")
}

// TestWalk_Errors checks that malformed and badly shaped literals are
// reported as errors rather than reaching the traversal.
func TestWalk_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "[]", grid.ErrEmptyGrid},
		{"EmptyRow", "[[]]", grid.ErrEmptyGrid},
		{"RaggedShort", "[[1, 2], [3]]", grid.ErrNonRectangular},
		{"RaggedLong", "[[1, 2, 3], [4]]", grid.ErrNonRectangular},
		{"RaggedWide", "[[1], [2, 3]]", grid.ErrNonRectangular},
		{"Syntax", "[[1,", gridtext.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				out string
				err error
			)
			require.NotPanics(t, func() { out, _, err = execute(t, "walk", tc.in) })
			require.ErrorIs(t, err, tc.err)
			require.Empty(t, out)
		})
	}

	_, _, err := execute(t, "--log-level", "chatty", "walk", "[[1]]")
	require.Error(t, err)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grids.yaml")
	doc := `
grids:
  - name: a
    cells: [[1]]
  - name: b
    cells: [[0, 1, 2], [3, 4, 5]]
  - name: c
    cells: [[0, 1], [2, 3], [4, 5]]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := execute(t, "file", "--workers", "3", path)
	require.NoError(t, err)
	require.Equal(t,
		"a [[1]]\n1\n"+
			"b [[0, 1, 2], [3, 4, 5]]\n0 1 2 5 4 3\n"+
			"c [[0, 1], [2, 3], [4, 5]]\n0 1 3 5 4 2\n",
		out)
}

func TestFile_Missing(t *testing.T) {
	_, _, err := execute(t, "file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
