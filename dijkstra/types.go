// Package dijkstra defines core types and configuration options
// for the single-source shortest-path solver.
//
// Options:
//
//	– WithoutEarlyExit: keep finalizing after the target is reached, so the
//	  Result holds the full shortest-path tree of every reachable node.
//	– WithOnFinalize:   hook invoked once per finalized node, in finalization order.
//
// Errors (sentinel):
//
//	– ErrNilAdjacency    if the adjacency view has no nodes.
//	– ErrNodeOutOfRange  if start or end lies outside [0, N).
//	– ErrNegativeWeight  if a negative arc weight is detected.
package dijkstra

import "errors"

// Sentinel errors returned by the solver.
var (
	// ErrNilAdjacency indicates that an empty (or nil) adjacency view was passed.
	ErrNilAdjacency = errors.New("dijkstra: adjacency view is empty")

	// ErrNodeOutOfRange indicates that start or end is not a node of the view.
	ErrNodeOutOfRange = errors.New("dijkstra: node out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// NoPredecessor marks the start node and unreached nodes in Result.Prev.
const NoPredecessor = -1

// Options configures the behavior of the solver.
//
// EarlyExit  – stop as soon as the end node is finalized (default true).
// OnFinalize – called with (node, distance) each time a node is finalized.
type Options struct {
	EarlyExit  bool
	OnFinalize func(node int, dist int64)
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithoutEarlyExit disables the stop-at-target shortcut.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// WithOnFinalize registers a finalization hook. A nil fn is ignored.
func WithOnFinalize(fn func(node int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// DefaultOptions returns the solver defaults:
//   - EarlyExit:  true.
//   - OnFinalize: no-op.
func DefaultOptions() Options {
	return Options{
		EarlyExit:  true,
		OnFinalize: func(int, int64) {},
	}
}
