package fixture

import (
	"fmt"

	"github.com/katalvlaran/pathquiz/core"
)

// DefaultInstructions is stored in every record: the exploration rules for
// the solver being tested and the exact answer format.
const DefaultInstructions = `## Graph search rules

Do not apply any named graph algorithm (Dijkstra, Bellman-Ford,
Floyd-Warshall, A*, BFS, DFS or any memorized shortest-path method).
Explore the graph by hand instead:
- start at the source node with distance 0;
- look at each neighbour of the current node;
- keep the best known distance of every node and update it when a shorter route appears;
- continue from the unvisited node with the smallest known distance;
- stop when the target is reached or nothing is left to explore.

## Question file
- graph: edge list, each edge is [node1, node2, distance]; edges are undirected
- start_node: where the path begins
- end_node: where the path ends

## Response
Respond with exactly this format and nothing else:
Distance: [number], Path: [start]->[node]->[node]->[end]

Example: Distance: 15, Path: 0->2->5->3`

// Record is the persisted shape of one question.
type Record struct {
	GraphID      int        `json:"graph_id"`
	Graph        [][3]int64 `json:"graph"`
	StartNode    int        `json:"start_node"`
	EndNode      int        `json:"end_node"`
	Instructions string     `json:"instructions"`
}

// NewRecord captures g and ep under id. Edges keep their insertion order.
func NewRecord(id int, g *core.Graph, ep core.Endpoints) Record {
	return Record{
		GraphID:      id,
		Graph:        g.Triples(),
		StartNode:    ep.Start,
		EndNode:      ep.End,
		Instructions: DefaultInstructions,
	}
}

// Endpoints returns the (start, end) pair of the record.
func (r Record) Endpoints() core.Endpoints {
	return core.Endpoints{Start: r.StartNode, End: r.EndNode}
}

// MaxNodeID returns the largest node id mentioned by edges or endpoints.
func (r Record) MaxNodeID() int64 {
	maxID := int64(r.StartNode)
	if int64(r.EndNode) > maxID {
		maxID = int64(r.EndNode)
	}
	for _, t := range r.Graph {
		if t[0] > maxID {
			maxID = t[0]
		}
		if t[1] > maxID {
			maxID = t[1]
		}
	}

	return maxID
}

// NodeLimit is the largest node id a record may mention. A generated graph
// is connected, so its N-1 never exceeds the edge count.
func (r Record) NodeLimit() int64 {
	return int64(len(r.Graph))
}

// NodeCount infers N as MaxNodeID() + 1.
// A generated graph spans every node, so this equals the generation N.
func (r Record) NodeCount() int {
	return int(r.MaxNodeID()) + 1
}

// Build rebuilds the graph over NodeCount() nodes.
// Ids above NodeLimit() and any triple rejected by core.Graph.AddEdge
// yield ErrBadRecord.
func (r Record) Build() (*core.Graph, error) {
	if r.StartNode < 0 || r.EndNode < 0 {
		return nil, fmt.Errorf("Record.Build: negative endpoint: %w", ErrBadRecord)
	}
	if m, limit := r.MaxNodeID(), r.NodeLimit(); m > limit {
		return nil, fmt.Errorf("Record.Build: node id %d above limit %d: %w: %w", m, limit, ErrNodeOutOfRange, ErrBadRecord)
	}
	g, err := core.NewGraph(r.NodeCount())
	if err != nil {
		return nil, fmt.Errorf("Record.Build: %v: %w", err, ErrBadRecord)
	}
	for i, t := range r.Graph {
		if t[0] < 0 || t[1] < 0 {
			return nil, fmt.Errorf("Record.Build: edge #%d %v: negative node: %w", i, t, ErrBadRecord)
		}
		if err = g.AddEdge(int(t[0]), int(t[1]), t[2]); err != nil {
			return nil, fmt.Errorf("Record.Build: edge #%d %v: %v: %w", i, t, err, ErrBadRecord)
		}
	}

	return g, nil
}
