package spiral_test

import (
	"testing"

	"github.com/katalvlaran/spiral/spiral"
)

// benchmarkWalk runs Walk on an n×m grid, failing on unexpected errors.
func benchmarkWalk(b *testing.B, n, m int) {
	cells := sequential(n, m)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := spiral.Walk(cells); err != nil {
			b.Fatalf("Walk failed: %v", err)
		}
	}
}

// BenchmarkWalk_Square100 walks a 100×100 grid.
func BenchmarkWalk_Square100(b *testing.B) { benchmarkWalk(b, 100, 100) }

// BenchmarkWalk_Square1000 walks a 1000×1000 grid.
// Complexity: O(R×C)
func BenchmarkWalk_Square1000(b *testing.B) { benchmarkWalk(b, 1000, 1000) }

// BenchmarkWalk_Wide walks a single-row grid, the longest straight run.
func BenchmarkWalk_Wide(b *testing.B) { benchmarkWalk(b, 1, 100000) }
