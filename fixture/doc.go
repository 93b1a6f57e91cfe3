// Package fixture persists generated shortest-path questions and audits them.
//
// A fixture file holds one Record:
//
//	{
//	  "graph_id": 1,
//	  "graph": [[0, 7, 13], [7, 3, 2], ...],
//	  "start_node": 4,
//	  "end_node": 17,
//	  "instructions": "..."
//	}
//
// Edges are [u, v, weight] triples in generation order. The reference answer
// is not embedded; callers recompute it with the dijkstra package.
//
// Files are named undirected_graph_<id>_<nodes>_nodes.<ext>, where ext is
// "json" (two-space indent) or "yaml". Read picks the decoder by extension.
//
// Audit re-checks every structural guarantee of a generated fixture and
// reports ALL violations at once (errors combined with go.uber.org/multierr).
// CrossCheck re-solves the question with gonum's Dijkstra and compares
// distances.
package fixture
