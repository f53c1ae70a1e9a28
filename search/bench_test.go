package search_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// openGrid builds an N×N all-open grid.
func openGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat(".", n)
	}
	g, err := grid.Parse(lines)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}

	return g
}

// benchSolve runs a full corner-to-corner search on an N×N open grid.
func benchSolve(b *testing.B, kind search.Kind, n int) {
	g := openGrid(b, n)
	start := grid.Coord{Row: 0, Col: 0}
	target := grid.Coord{Row: int32(n - 1), Col: int32(n - 1)}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d, err := search.NewDriver(g, search.WithStrategy(kind))
		if err != nil {
			b.Fatal(err)
		}
		if err = d.SelectStart(start); err != nil {
			b.Fatal(err)
		}
		if err = d.SelectTarget(target); err != nil {
			b.Fatal(err)
		}
		if _, err = d.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBreadthFirst_64 measures a full BFS solve on a 64×64 open grid.
func BenchmarkBreadthFirst_64(b *testing.B) { benchSolve(b, search.BreadthFirst, 64) }

// BenchmarkDepthFirst_64 measures a full DFS solve on a 64×64 open grid.
func BenchmarkDepthFirst_64(b *testing.B) { benchSolve(b, search.DepthFirst, 64) }

// BenchmarkAStar_64 measures a full A* solve on a 64×64 open grid.
func BenchmarkAStar_64(b *testing.B) { benchSolve(b, search.AStar, 64) }
