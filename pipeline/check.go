package pipeline

import (
	"math"

	"github.com/katalvlaran/pathquiz/core"
	"github.com/katalvlaran/pathquiz/dijkstra"
	"github.com/katalvlaran/pathquiz/fixture"
	"github.com/katalvlaran/pathquiz/validator"
)

// Question is a fixture file loaded back into memory with its reference answer.
type Question struct {
	Record    fixture.Record
	Graph     *core.Graph
	Endpoints core.Endpoints
	Answer    core.Answer
}

// Load reads a fixture file, audits its raw edge list, rebuilds the graph and
// recomputes the reference answer. Weights are only required to be positive
// since the generation bound is not stored in the file.
func Load(path string) (*Question, error) {
	rec, err := fixture.Read(path)
	if err != nil {
		return nil, err
	}
	if err = fixture.AuditRecord(rec, math.MaxInt64); err != nil {
		return nil, err
	}
	g, err := rec.Build()
	if err != nil {
		return nil, err
	}
	ep := rec.Endpoints()
	ans, err := dijkstra.Solve(g, ep)
	if err != nil {
		return nil, err
	}

	return &Question{Record: rec, Graph: g, Endpoints: ep, Answer: ans}, nil
}

// Check validates a free-text candidate against q. With strict set the
// candidate path is also walked through the graph.
func (q *Question) Check(text string, strict bool) validator.Verdict {
	if !strict {
		return validator.ValidateText(text, q.Answer)
	}
	candidate, err := validator.ParseAnswer(text)
	if err != nil {
		return validator.Verdict{Reason: validator.ReasonMalformedAnswer + ": " + err.Error()}
	}

	return validator.Strict(q.Graph, q.Endpoints, candidate, q.Answer)
}
