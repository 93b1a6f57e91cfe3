package fixture

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathquiz/bfs"
	"github.com/katalvlaran/pathquiz/core"
)

// Audit checks a generated fixture and its reference answer:
//
//   - every node is reachable from node 0;
//   - no self-loops, every weight in [1, maxWeight];
//   - endpoints in range and distinct;
//   - the answer is reachable and its path runs from ep.Start to ep.End.
//
// All violations are returned together as one multierr error; use
// multierr.Errors to list them and errors.Is to test for a sentinel.
func Audit(g *core.Graph, ep core.Endpoints, maxWeight int64, ans core.Answer) error {
	if g == nil {
		return fmt.Errorf("Audit: %w", ErrNilGraph)
	}

	var errs error
	if missing, err := bfs.Unreached(g.Adjacency(), 0); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("Audit: %v: %w", err, ErrDisconnected))
	} else if len(missing) > 0 {
		errs = multierr.Append(errs, fmt.Errorf("Audit: %d node(s) unreachable from 0, first %d: %w",
			len(missing), missing[0], ErrDisconnected))
	}

	for _, e := range g.Edges() {
		if e.U == e.V {
			errs = multierr.Append(errs, fmt.Errorf("Audit: edge %s: %w", e, ErrSelfLoop))
		}
		if e.Weight < 1 || e.Weight > maxWeight {
			errs = multierr.Append(errs, fmt.Errorf("Audit: edge %s not in [1,%d]: %w", e, maxWeight, ErrWeightOutOfRange))
		}
	}

	if err := ep.Validate(g.NodeCount()); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("Audit: %v: %w", err, ErrBadEndpoints))
	}

	errs = multierr.Append(errs, auditAnswer(ep, ans))

	return errs
}

func auditAnswer(ep core.Endpoints, ans core.Answer) error {
	if !ans.Reachable() {
		return fmt.Errorf("Audit: end %d unreachable from %d: %w", ep.End, ep.Start, ErrAnswerPath)
	}
	n := len(ans.Path)
	if n == 0 || ans.Path[0] != ep.Start || ans.Path[n-1] != ep.End {
		return fmt.Errorf("Audit: path %v for %d->%d: %w", ans.Path, ep.Start, ep.End, ErrAnswerPath)
	}

	return nil
}

// AuditRecord checks the raw triples of rec before they are rebuilt into a
// graph: node ids in [0, rec.NodeLimit()], no self-loops, no repeated
// unordered pair, weights in [1, maxWeight], valid endpoints. Like Audit it
// reports every violation.
func AuditRecord(rec Record, maxWeight int64) error {
	var errs error
	limit := rec.NodeLimit()
	seen := make(map[[2]int64]int, len(rec.Graph))
	for i, t := range rec.Graph {
		u, v, w := t[0], t[1], t[2]
		if u < 0 || v < 0 {
			errs = multierr.Append(errs, fmt.Errorf("AuditRecord: edge #%d %v: %w", i, t, ErrBadRecord))
			continue
		}
		if u > limit || v > limit {
			errs = multierr.Append(errs, fmt.Errorf("AuditRecord: edge #%d %v above node limit %d: %w", i, t, limit, ErrNodeOutOfRange))
			continue
		}
		if u == v {
			errs = multierr.Append(errs, fmt.Errorf("AuditRecord: edge #%d %v: %w", i, t, ErrSelfLoop))
		}
		if w < 1 || w > maxWeight {
			errs = multierr.Append(errs, fmt.Errorf("AuditRecord: edge #%d %v not in [1,%d]: %w", i, t, maxWeight, ErrWeightOutOfRange))
		}
		key := [2]int64{u, v}
		if v < u {
			key = [2]int64{v, u}
		}
		if first, dup := seen[key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("AuditRecord: edge #%d %v repeats #%d: %w", i, t, first, ErrDuplicateEdge))
		} else {
			seen[key] = i
		}
	}
	if int64(rec.StartNode) > limit || int64(rec.EndNode) > limit {
		errs = multierr.Append(errs, fmt.Errorf("AuditRecord: endpoints %d->%d above node limit %d: %w",
			rec.StartNode, rec.EndNode, limit, ErrNodeOutOfRange))
	} else if err := rec.Endpoints().Validate(rec.NodeCount()); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("AuditRecord: %v: %w", err, ErrBadEndpoints))
	}

	return errs
}

// CrossCheck re-solves (g, ep) with gonum's Dijkstra and compares the
// distance with ans. Paths are not compared: equal-cost routes may differ.
func CrossCheck(g *core.Graph, ep core.Endpoints, ans core.Answer) error {
	if g == nil {
		return fmt.Errorf("CrossCheck: %w", ErrNilGraph)
	}
	if !g.HasNode(ep.Start) || !g.HasNode(ep.End) {
		return fmt.Errorf("CrossCheck: %d->%d with N=%d: %w", ep.Start, ep.End, g.NodeCount(), ErrBadEndpoints)
	}

	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.NodeCount(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetWeightedEdge(ug.NewWeightedEdge(simple.Node(e.U), simple.Node(e.V), float64(e.Weight)))
	}
	want := path.DijkstraFrom(simple.Node(ep.Start), ug).WeightTo(int64(ep.End))

	switch {
	case math.IsInf(want, 1) && !ans.Reachable():
		return nil
	case math.IsInf(want, 1):
		return fmt.Errorf("CrossCheck: gonum=unreachable, answer=%d: %w", ans.Distance, ErrCrossCheck)
	case !ans.Reachable() || int64(want) != ans.Distance:
		return fmt.Errorf("CrossCheck: gonum=%d, answer=%s: %w", int64(want), ans, ErrCrossCheck)
	}

	return nil
}
