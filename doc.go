// Package pathquiz generates synthetic shortest-path questions with known
// answers, for benchmarking solvers that must find a minimum-weight route
// between two nodes of a weighted undirected graph.
//
// 🚀 What is pathquiz?
//
//	A small, deterministic fixture factory:
//		• Generator: random spanning tree + random extra edges + endpoints
//		• Reference solver: Dijkstra with lazy deletion and early exit
//		• Validator: lenient grading (distance + endpoints) and a strict mode
//		• Fixtures: JSON/YAML question files, Graphviz drawings, invariant audits
//
// ✨ Guarantees
//
//   - Every generated graph is connected, simple, and weighted in [1, max].
//   - Start and end always differ.
//   - Same seed ⇒ same graph, same endpoints, same reference answer.
//
// Packages:
//
//	core/      Graph, Edge, Endpoints, Answer and the adjacency view
//	builder/   seeded constructors and Generate
//	bfs/       connectivity checks
//	dijkstra/  reference shortest-path solver
//	validator/ answer parsing and grading
//	fixture/   persisted records, audit, gonum cross-check
//	render/    Graphviz DOT output
//	config/    viper configuration + validation
//	pipeline/  generate → solve → audit → persist → draw
//
// Quick example:
//
//	g, ep, _ := builder.Generate(20, 20, builder.WithSeed(43))
//	ans, _ := dijkstra.Solve(g, ep)
//	fmt.Println(ans) // Distance: <d>, Path: <start>->...-><end>
//
// The command line lives in cmd/pathquiz:
//
//	go install github.com/katalvlaran/pathquiz/cmd/pathquiz@latest
package pathquiz
