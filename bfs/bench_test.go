package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathquiz/bfs"
	"github.com/katalvlaran/pathquiz/core"
)

// BenchmarkConnected measures the connectivity check on a 100×100 grid.
func BenchmarkConnected(b *testing.B) {
	const side = 100
	g, _ := core.NewGraph(side * side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := r*side + c
			if c+1 < side {
				_ = g.AddEdge(id, id+1, 1)
			}
			if r+1 < side {
				_ = g.AddEdge(id, id+side, 1)
			}
		}
	}
	adj := g.Adjacency()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !bfs.Connected(adj) {
			b.Fatal("grid must be connected")
		}
	}
}
