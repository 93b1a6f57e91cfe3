// Package render draws a fixture as a Graphviz DOT document.
//
// Nodes are light blue circles labelled with their id; the start node is
// green and the end node red. Every edge is labelled with its weight. Edges
// of the supplied path are drawn blue and thick. The default layout engine
// is neato, which gives a force-directed picture similar to a spring layout.
//
//	dot, err := render.DOT(g, ep, ans.Path, render.WithTitle("Graph 1"))
//	// dot -Tpng graph.dot > graph.png
package render
