package validator

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrMalformedAnswer indicates that a candidate text does not match
	// "Distance: <int>, Path: a->b->...".
	ErrMalformedAnswer = errors.New("validator: malformed answer")

	// ErrPathTooShort indicates a path with fewer than two nodes.
	ErrPathTooShort = errors.New("validator: path must have at least 2 nodes")

	// ErrUnknownNode indicates a path node outside the graph.
	ErrUnknownNode = errors.New("validator: node does not exist in graph")

	// ErrMissingEdge indicates two consecutive path nodes without an edge.
	ErrMissingEdge = errors.New("validator: no edge between consecutive nodes")
)

// Reason prefixes. Every failed Verdict's Reason starts with one of these.
const (
	ReasonDistanceMismatch = "distance mismatch"
	ReasonEndpointMismatch = "endpoint mismatch"
	ReasonValidationError  = "validation error"
	ReasonMalformedAnswer  = "malformed answer"
	ReasonInvalidPath      = "invalid path"
	ReasonWrongClaim       = "distance claim mismatch"
)

// Verdict is the outcome of validating one candidate answer.
// Reason is empty when OK is true.
type Verdict struct {
	OK     bool
	Reason string
}

// String renders "PASS" or "FAIL: <reason>".
func (v Verdict) String() string {
	if v.OK {
		return "PASS"
	}

	return "FAIL: " + v.Reason
}

func pass() Verdict { return Verdict{OK: true} }

func fail(prefix, format string, args ...interface{}) Verdict {
	return Verdict{Reason: prefix + ": " + fmt.Sprintf(format, args...)}
}
