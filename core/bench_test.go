package core_test

import (
	"testing"

	"github.com/katalvlaran/pathquiz/core"
)

const benchNodes = 1000

// BenchmarkAddEdge measures inserting a path 0-1-...-(n-1).
func BenchmarkAddEdge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := core.NewGraph(benchNodes)
		for v := 1; v < benchNodes; v++ {
			_ = g.AddEdge(v-1, v, int64(v%20+1))
		}
	}
}

// BenchmarkAdjacency measures deriving the view of a path graph.
func BenchmarkAdjacency(b *testing.B) {
	g, _ := core.NewGraph(benchNodes)
	for v := 1; v < benchNodes; v++ {
		_ = g.AddEdge(v-1, v, 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Adjacency()
	}
}
