package validator

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathquiz/core"
)

// Validate compares candidate against reference.
//
// Rules (in order, first failure wins):
//  1. candidate.Distance == reference.Distance, else "distance mismatch".
//  2. candidate.Path is non-empty and shares the first and last node of
//     reference.Path, else "endpoint mismatch".
//
// A panic during comparison is recovered and reported as a failed Verdict
// with reason "validation error: <cause>".
func Validate(candidate, reference core.Answer) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = fail(ReasonValidationError, "%v", r)
		}
	}()

	if candidate.Distance != reference.Distance {
		return fail(ReasonDistanceMismatch, "candidate=%s, reference=%s",
			formatDistance(candidate.Distance), formatDistance(reference.Distance))
	}

	if len(candidate.Path) == 0 {
		return fail(ReasonEndpointMismatch, "candidate path is empty")
	}
	cFirst, cLast := candidate.Path[0], candidate.Path[len(candidate.Path)-1]
	rFirst, rLast := reference.Path[0], reference.Path[len(reference.Path)-1]
	if cFirst != rFirst || cLast != rLast {
		return fail(ReasonEndpointMismatch, "candidate path=%v, reference path=%v",
			candidate.Path, reference.Path)
	}

	return pass()
}

// ValidateText parses text with ParseAnswer and validates the result.
// Parse failures become a failed Verdict with reason "malformed answer: ...".
func ValidateText(text string, reference core.Answer) Verdict {
	candidate, err := ParseAnswer(text)
	if err != nil {
		return Verdict{Reason: ReasonMalformedAnswer + ": " + err.Error()}
	}

	return Validate(candidate, reference)
}

// Strict is the structural check: candidate must start at ep.Start and end at
// ep.End, walk only existing edges, claim exactly the weight it walks, and
// that weight must equal the reference distance.
//
// Rules (in order, first failure wins):
//  1. non-empty path with matching endpoints ("endpoint mismatch");
//  2. PathWeight succeeds ("invalid path");
//  3. walked weight == candidate.Distance ("distance claim mismatch");
//  4. walked weight == reference.Distance ("distance mismatch").
func Strict(g *core.Graph, ep core.Endpoints, candidate, reference core.Answer) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = fail(ReasonValidationError, "%v", r)
		}
	}()

	n := len(candidate.Path)
	if n == 0 {
		return fail(ReasonEndpointMismatch, "candidate path is empty")
	}
	if candidate.Path[0] != ep.Start {
		return fail(ReasonEndpointMismatch, "start expected %d, got %d", ep.Start, candidate.Path[0])
	}
	if candidate.Path[n-1] != ep.End {
		return fail(ReasonEndpointMismatch, "end expected %d, got %d", ep.End, candidate.Path[n-1])
	}

	walked, err := PathWeight(g, candidate.Path)
	if err != nil {
		return Verdict{Reason: ReasonInvalidPath + ": " + err.Error()}
	}
	if walked != candidate.Distance {
		return fail(ReasonWrongClaim, "claimed %s, walked %d", formatDistance(candidate.Distance), walked)
	}
	if walked != reference.Distance {
		return fail(ReasonDistanceMismatch, "walked %d, optimal %s", walked, formatDistance(reference.Distance))
	}

	return pass()
}

// PathWeight walks path through g and returns the sum of its edge weights.
//
// Errors:
//   - ErrPathTooShort if len(path) < 2.
//   - ErrUnknownNode  if a node is outside [0, N).
//   - ErrMissingEdge  if two consecutive nodes are not adjacent.
func PathWeight(g *core.Graph, path []int) (int64, error) {
	if len(path) < 2 {
		return 0, fmt.Errorf("PathWeight: len=%d: %w", len(path), ErrPathTooShort)
	}
	if g == nil {
		return 0, fmt.Errorf("PathWeight: nil graph: %w", ErrUnknownNode)
	}

	var total int64
	for i, v := range path {
		if !g.HasNode(v) {
			return 0, fmt.Errorf("PathWeight: node %d: %w", v, ErrUnknownNode)
		}
		if i == 0 {
			continue
		}
		w, ok := g.Weight(path[i-1], v)
		if !ok {
			return 0, fmt.Errorf("PathWeight: %d->%d: %w", path[i-1], v, ErrMissingEdge)
		}
		total += w
	}

	return total, nil
}

func formatDistance(d int64) string {
	if d == core.Unreachable {
		return "unreachable"
	}

	return strconv.FormatInt(d, 10)
}
