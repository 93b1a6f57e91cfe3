package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathquiz/core"
)

// answerRe matches the textual answer shape. The distance is a non-negative
// integer or the word "unreachable"; the path is everything after "Path:".
var answerRe = regexp.MustCompile(`(?i)^\s*distance\s*:\s*(\d+|unreachable)\s*,\s*path\s*:\s*(.*?)\s*$`)

// PathSeparator joins node ids in the textual answer shape.
const PathSeparator = "->"

// ParseAnswer parses "Distance: <int>, Path: a->b->c" into a core.Answer.
// Whitespace around tokens is ignored and keywords are case-insensitive.
// "Distance: unreachable, Path:" parses to core.UnreachableAnswer().
//
// Any deviation returns an error wrapping ErrMalformedAnswer.
func ParseAnswer(text string) (core.Answer, error) {
	m := answerRe.FindStringSubmatch(text)
	if m == nil {
		return core.Answer{}, fmt.Errorf("%w: expected %q, got %q",
			ErrMalformedAnswer, "Distance: X, Path: A->B->C", text)
	}

	var ans core.Answer
	if strings.EqualFold(m[1], "unreachable") {
		ans.Distance = core.Unreachable
	} else {
		d, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || d == core.Unreachable {
			return core.Answer{}, fmt.Errorf("%w: distance %q out of range", ErrMalformedAnswer, m[1])
		}
		ans.Distance = d
	}

	ans.Path = []int{}
	if m[2] == "" {
		return ans, nil
	}
	for _, tok := range strings.Split(m[2], PathSeparator) {
		tok = strings.TrimSpace(tok)
		id, err := strconv.Atoi(tok)
		if err != nil || id < 0 {
			return core.Answer{}, fmt.Errorf("%w: invalid node %q in path", ErrMalformedAnswer, tok)
		}
		ans.Path = append(ans.Path, id)
	}

	return ans, nil
}
