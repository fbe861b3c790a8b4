// File: spiral/example_test.go
package spiral_test

import (
	"fmt"

	"github.com/katalvlaran/spiral/spiral"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Walk
////////////////////////////////////////////////////////////////////////////////

// ExampleWalk collects the spiral order of a 3×3 grid.
func ExampleWalk() {
	values, err := spiral.Walk([][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(values)

	// Output:
	// [0 1 2 5 8 7 6 3 4]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Traverser.All
////////////////////////////////////////////////////////////////////////////////

// ExampleTraverser_All streams a 2×3 grid lazily, cell by cell.
func ExampleTraverser_All() {
	t, _ := spiral.New([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	})
	all, err := t.All()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for pos, v := range all {
		fmt.Println(pos, v)
	}

	// Output:
	// (0,0) a
	// (0,1) b
	// (0,2) c
	// (1,2) f
	// (1,1) e
	// (1,0) d
}

// ExampleOrder lists the visiting order of a 2×2 grid.
func ExampleOrder() {
	order, _ := spiral.Order(2, 2)
	fmt.Println(order)

	// Output:
	// [(0,0) (0,1) (1,1) (1,0)]
}
