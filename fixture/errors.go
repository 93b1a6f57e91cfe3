package fixture

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported format name or file extension.
	ErrUnknownFormat = errors.New("fixture: unknown format")

	// ErrBadRecord indicates a record that cannot be turned back into a graph.
	ErrBadRecord = errors.New("fixture: malformed record")

	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("fixture: graph is nil")

	// ErrDisconnected indicates that not every node is reachable from node 0.
	ErrDisconnected = errors.New("fixture: graph is not connected")

	// ErrNodeOutOfRange indicates a node id larger than the edge list can connect.
	ErrNodeOutOfRange = errors.New("fixture: node id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("fixture: self-loop")

	// ErrDuplicateEdge indicates a repeated unordered pair.
	ErrDuplicateEdge = errors.New("fixture: duplicate edge")

	// ErrWeightOutOfRange indicates a weight outside [1, maxWeight].
	ErrWeightOutOfRange = errors.New("fixture: weight out of range")

	// ErrBadEndpoints indicates out-of-range or equal start/end nodes.
	ErrBadEndpoints = errors.New("fixture: invalid endpoints")

	// ErrAnswerPath indicates a reference answer that does not connect the endpoints.
	ErrAnswerPath = errors.New("fixture: answer path does not match endpoints")

	// ErrCrossCheck indicates disagreement with the independent solver.
	ErrCrossCheck = errors.New("fixture: cross-check distance mismatch")
)
