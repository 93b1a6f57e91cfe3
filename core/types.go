// Package core declares Edge, Arc, Graph, Endpoints and the sentinel errors
// returned by graph construction.
//
// Errors:
//
//	ErrTooFewNodes         - NewGraph called with n < 1.
//	ErrNodeOutOfRange      - node id outside [0, N).
//	ErrLoopNotAllowed      - edge from a node to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same unordered pair.
//	ErrBadWeight           - weight < 1.
//	ErrBadEndpoints        - endpoints out of range or equal.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewNodes indicates a graph was requested with no nodes.
	ErrTooFewNodes = errors.New("core: graph needs at least one node")

	// ErrNodeOutOfRange indicates an operation referenced a node outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrBadEndpoints indicates an invalid (start, end) pair.
	ErrBadEndpoints = errors.New("core: invalid endpoints")
)

// Edge is an undirected weighted connection between two distinct nodes.
// The orientation U→V records generation order only; {U,V} == {V,U}.
type Edge struct {
	// U is the first endpoint as generated.
	U int

	// V is the second endpoint as generated.
	V int

	// Weight is the strictly positive cost of traversing the edge.
	Weight int64
}

// Triple returns the edge as the external (u, v, w) shape.
func (e Edge) Triple() [3]int64 {
	return [3]int64{int64(e.U), int64(e.V), e.Weight}
}

// String renders the edge as "u-v:w".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%d", e.U, e.V, e.Weight)
}

// Arc is one directed half of an undirected Edge as seen from a node.
type Arc struct {
	To     int
	Weight int64
}

// pairKey identifies an unordered node pair with lo < hi.
type pairKey struct{ lo, hi int }

func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is a simple weighted undirected graph over nodes 0..N-1.
//
// edges keeps insertion order; index maps each unordered pair to its
// position in edges for O(1) duplicate detection and weight lookup.
type Graph struct {
	n     int
	edges []Edge
	index map[pairKey]int
}

// Endpoints is the (start, end) pair a fixture asks about.
type Endpoints struct {
	Start int
	End   int
}

// Validate reports ErrBadEndpoints unless both nodes lie in [0, n) and differ.
func (ep Endpoints) Validate(n int) error {
	if ep.Start < 0 || ep.Start >= n || ep.End < 0 || ep.End >= n {
		return fmt.Errorf("%w: start=%d end=%d outside [0,%d)", ErrBadEndpoints, ep.Start, ep.End, n)
	}
	if ep.Start == ep.End {
		return fmt.Errorf("%w: start == end == %d", ErrBadEndpoints, ep.Start)
	}

	return nil
}
