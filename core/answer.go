package core

import (
	"math"
	"strconv"
	"strings"
)

// Unreachable is the distance sentinel of an Answer whose target cannot be
// reached. It is strictly greater than any achievable finite sum.
const Unreachable int64 = math.MaxInt64

// Answer is the (distance, path) pair for one (Graph, Endpoints).
// Path runs from start to end inclusive; it is empty when Distance == Unreachable.
type Answer struct {
	Distance int64
	Path     []int
}

// UnreachableAnswer returns the Answer for a target with no path.
func UnreachableAnswer() Answer {
	return Answer{Distance: Unreachable, Path: []int{}}
}

// Reachable reports whether the answer carries a finite distance.
func (a Answer) Reachable() bool {
	return a.Distance != Unreachable
}

// String renders the answer as "Distance: <d>, Path: n0->n1->...->nk".
func (a Answer) String() string {
	var sb strings.Builder
	sb.WriteString("Distance: ")
	if a.Reachable() {
		sb.WriteString(strconv.FormatInt(a.Distance, 10))
	} else {
		sb.WriteString("unreachable")
	}
	sb.WriteString(", Path: ")
	sb.WriteString(JoinPath(a.Path, "->"))

	return sb.String()
}

// JoinPath renders a node sequence with sep between ids.
func JoinPath(path []int, sep string) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, sep)
}
