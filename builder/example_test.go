package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathquiz/bfs"
	"github.com/katalvlaran/pathquiz/builder"
)

// ExampleGenerate builds one seeded fixture graph and checks its guarantees.
func ExampleGenerate() {
	g, ep, err := builder.Generate(20, 20, builder.WithSeed(43))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("at least a tree:", g.EdgeCount() >= g.NodeCount()-1)
	fmt.Println("connected:", bfs.Connected(g.Adjacency()))
	fmt.Println("distinct endpoints:", ep.Start != ep.End)

	// Output:
	// nodes: 20
	// at least a tree: true
	// connected: true
	// distinct endpoints: true
}

// ExampleBuildGraph composes constructors explicitly.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(10,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 5)},
		builder.RandomSpanningTree(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.EdgeCount())

	// Output:
	// 9
}
