package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleDriver_Run solves a 1×5 corridor with the default breadth-first
// strategy and prints the reconstructed route.
func ExampleDriver_Run() {
	g, err := grid.Parse([]string{"....."})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, err := search.NewDriver(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = d.SelectStart(grid.Coord{Row: 0, Col: 0})
	_ = d.SelectTarget(grid.Coord{Row: 0, Col: 4})

	state, err := d.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(state)
	fmt.Println(d.Path())
	// Output:
	// Solved
	// [{0 0} {0 1} {0 2} {0 3} {0 4}]
}

// ExampleDriver_Step drives an A* search one expansion at a time, the way a
// renderer would between frames.
func ExampleDriver_Step() {
	g, err := grid.Parse([]string{
		"..",
		"..",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := search.NewDriver(g, search.WithStrategy(search.AStar))
	_ = d.SelectStart(grid.Coord{Row: 0, Col: 0})
	_ = d.SelectTarget(grid.Coord{Row: 1, Col: 1})

	state := d.State()
	for state == search.Running {
		state, err = d.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Println(state, len(d.Path()))
	// Output:
	// Solved 3
}
