// Package validator decides whether a candidate (distance, path) answer is
// acceptable against the reference answer of a fixture.
//
// Validate is deliberately lenient. It checks, in order and short-circuiting:
//
//  1. the distances are equal ("distance mismatch");
//  2. the candidate path is non-empty and its first and last nodes equal the
//     reference's first and last nodes ("endpoint mismatch").
//
// Intermediate nodes are NOT checked: any path that claims the optimal
// distance between the right endpoints is accepted, even one that does not
// exist in the graph. Callers needing structural checks use Strict, which
// walks the candidate path through the graph with PathWeight.
//
// Validate never panics and never returns an error: every unexpected
// condition (for example an empty reference path) becomes a failed Verdict
// whose reason starts with "validation error:".
//
// Free-text answers of the form
//
//	Distance: 7, Path: 0->1->2
//
// are parsed by ParseAnswer; ValidateText folds parse failures into a failed
// Verdict as well.
package validator
