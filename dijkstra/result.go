package dijkstra

import "github.com/katalvlaran/pathquiz/core"

// Result is the frozen state of one solver run.
//
//   - Dist[v]:      best known distance from Start; core.Unreachable if never reached.
//   - Prev[v]:      predecessor on that best route; NoPredecessor for Start and unreached nodes.
//   - Finalized[v]: Dist[v] is the true minimum and will not change.
//
// With early exit, nodes that were reached but not finalized keep a
// tentative (upper-bound) distance.
type Result struct {
	Start     int
	End       int
	Dist      []int64
	Prev      []int
	Finalized []bool
}

func newResult(n, start, end int) *Result {
	res := &Result{
		Start:     start,
		End:       end,
		Dist:      make([]int64, n),
		Prev:      make([]int, n),
		Finalized: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = core.Unreachable
		res.Prev[i] = NoPredecessor
	}

	return res
}

// PathTo walks Prev backwards from v to Start and returns the forward path.
// Returns an empty, non-nil slice when v was never reached.
func (r *Result) PathTo(v int) []int {
	if v < 0 || v >= len(r.Dist) || r.Dist[v] == core.Unreachable {
		return []int{}
	}
	path := make([]int, 0, 8)
	for cur := v; cur != NoPredecessor; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Answer returns the (distance, path) pair for End.
func (r *Result) Answer() core.Answer {
	if r.Start == r.End {
		return core.Answer{Distance: 0, Path: []int{r.Start}}
	}
	if r.Dist[r.End] == core.Unreachable {
		return core.UnreachableAnswer()
	}

	return core.Answer{Distance: r.Dist[r.End], Path: r.PathTo(r.End)}
}
