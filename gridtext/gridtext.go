// Package gridtext reads and writes grid literals such as [[0, 1], [2, 3]].
package gridtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrSyntax indicates a literal that does not match the grid grammar.
var ErrSyntax = errors.New("gridtext: malformed grid literal")

type literal struct {
	Rows []*row `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

type row struct {
	Cells []*cell `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

type cell struct {
	Neg   bool `parser:"@'-'?"`
	Value int  `parser:"@Int"`
}

var parser = participle.MustBuild[literal]()

// Parse decodes a bracketed list of integer rows. Shape is not checked:
// "[]" and ragged rows parse successfully and are left to the caller.
func Parse(s string) ([][]int, error) {
	lit, err := parser.ParseString("grid", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	out := make([][]int, len(lit.Rows))
	for r, rw := range lit.Rows {
		out[r] = make([]int, len(rw.Cells))
		for c, cl := range rw.Cells {
			v := cl.Value
			if cl.Neg {
				v = -v
			}
			out[r][c] = v
		}
	}

	return out, nil
}

// Format renders cells in the literal syntax accepted by Parse.
func Format[V any](cells [][]V) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r, rw := range cells {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for c, v := range rw {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
