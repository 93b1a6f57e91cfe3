package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/pathquiz/core"
)

// Colors used in the drawing.
const (
	ColorNode  = "lightblue"
	ColorStart = "green"
	ColorEnd   = "red"
	ColorEdge  = "gray"
	ColorPath  = "blue"
	ColorLabel = "red"
)

const graphName = "pathquiz"

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrBadEndpoints indicates endpoints outside the graph.
	ErrBadEndpoints = errors.New("render: endpoints out of range")

	// ErrPathEdge indicates two consecutive path nodes that are not adjacent.
	ErrPathEdge = errors.New("render: path step is not an edge")
)

type options struct {
	title  string
	layout string
}

// Option configures DOT.
type Option func(*options)

// WithTitle sets the graph label drawn above the picture.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithLayout selects the Graphviz layout engine (neato, dot, fdp, sfdp, circo).
// Panics on an empty name.
func WithLayout(engine string) Option {
	if engine == "" {
		panic("render: WithLayout(\"\")")
	}

	return func(o *options) { o.layout = engine }
}

// FileName returns "graph_<id>_<n>_nodes.dot".
func FileName(id, n int) string {
	return fmt.Sprintf("graph_%d_%d_nodes.dot", id, n)
}

// DOT renders g with ep highlighted and path (may be empty) drawn in blue.
func DOT(g *core.Graph, ep core.Endpoints, path []int, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if !g.HasNode(ep.Start) || !g.HasNode(ep.End) {
		return "", fmt.Errorf("DOT: %d->%d with N=%d: %w", ep.Start, ep.End, g.NodeCount(), ErrBadEndpoints)
	}
	o := options{layout: "neato"}
	for _, opt := range opts {
		opt(&o)
	}

	onPath, err := pathEdges(g, path)
	if err != nil {
		return "", err
	}

	out := gographviz.NewGraph()
	if err = out.SetName(graphName); err != nil {
		return "", err
	}
	if err = out.SetDir(false); err != nil {
		return "", err
	}
	attrs := map[string]string{
		"layout":  o.layout,
		"overlap": "false",
		"splines": "true",
	}
	if o.title != "" {
		attrs["label"] = strconv.Quote(o.title)
		attrs["labelloc"] = "t"
		attrs["fontsize"] = "16"
	}
	for k, v := range attrs {
		if err = out.AddAttr(graphName, k, v); err != nil {
			return "", fmt.Errorf("DOT: graph attr %s: %w", k, err)
		}
	}

	for v := 0; v < g.NodeCount(); v++ {
		fill := ColorNode
		switch v {
		case ep.Start:
			fill = ColorStart
		case ep.End:
			fill = ColorEnd
		}
		if err = out.AddNode(graphName, strconv.Itoa(v), map[string]string{
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": fill,
			"fontsize":  "12",
		}); err != nil {
			return "", fmt.Errorf("DOT: node %d: %w", v, err)
		}
	}

	for _, e := range g.Edges() {
		edgeAttrs := map[string]string{
			"label":     strconv.Quote(strconv.FormatInt(e.Weight, 10)),
			"fontcolor": ColorLabel,
			"color":     ColorEdge,
			"penwidth":  "2",
		}
		if onPath[pairOf(e.U, e.V)] {
			edgeAttrs["color"] = ColorPath
			edgeAttrs["penwidth"] = "4"
		}
		if err = out.AddEdge(strconv.Itoa(e.U), strconv.Itoa(e.V), false, edgeAttrs); err != nil {
			return "", fmt.Errorf("DOT: edge %s: %w", e, err)
		}
	}

	return out.String(), nil
}

type pair struct{ lo, hi int }

func pairOf(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{u, v}
}

// pathEdges checks that every step of path is an edge of g and returns the
// set of those edges.
func pathEdges(g *core.Graph, path []int) (map[pair]bool, error) {
	set := make(map[pair]bool, len(path))
	for i := 1; i < len(path); i++ {
		if !g.HasEdge(path[i-1], path[i]) {
			return nil, fmt.Errorf("DOT: %d->%d: %w", path[i-1], path[i], ErrPathEdge)
		}
		set[pairOf(path[i-1], path[i])] = true
	}

	return set, nil
}
