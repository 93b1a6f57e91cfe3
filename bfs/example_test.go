package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathquiz/bfs"
	"github.com/katalvlaran/pathquiz/core"
)

// ExampleBFS finds the fewest-hop route in a small network.
// Two competing routes exist from 0 to 5: 0-1-2-3-5 (4 hops) and 0-4-5 (2 hops).
func ExampleBFS() {
	g, _ := core.NewGraph(6)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 5, 1)
	_ = g.AddEdge(0, 4, 9)
	_ = g.AddEdge(4, 5, 9)

	res, err := bfs.BFS(g.Adjacency(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(5)
	fmt.Println("order:", res.Order)
	fmt.Println("path:", path)
	fmt.Println("connected:", bfs.Connected(g.Adjacency()))

	// Output:
	// order: [0 1 4 2 5 3]
	// path: [0 4 5]
	// connected: true
}
