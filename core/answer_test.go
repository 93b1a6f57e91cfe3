package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathquiz/core"
)

func TestAnswer_String(t *testing.T) {
	cases := []struct {
		name string
		in   core.Answer
		want string
	}{
		{"three hops", core.Answer{Distance: 7, Path: []int{0, 1, 2}}, "Distance: 7, Path: 0->1->2"},
		{"single node", core.Answer{Distance: 0, Path: []int{5}}, "Distance: 0, Path: 5"},
		{"unreachable", core.UnreachableAnswer(), "Distance: unreachable, Path: "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestAnswer_Reachable(t *testing.T) {
	assert.True(t, core.Answer{Distance: 0, Path: []int{1}}.Reachable())

	un := core.UnreachableAnswer()
	assert.False(t, un.Reachable())
	assert.NotNil(t, un.Path)
	assert.Empty(t, un.Path)
}

func TestEdge_TripleAndString(t *testing.T) {
	e := core.Edge{U: 3, V: 1, Weight: 12}
	assert.Equal(t, [3]int64{3, 1, 12}, e.Triple())
	assert.Equal(t, "3-1:12", e.String())
}
