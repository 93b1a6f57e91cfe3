package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathquiz/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	g, err := core.NewGraph(NodesSmall)
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestNewGraphRejectsEmpty() {
	require := require.New(s.T())
	_, err := core.NewGraph(0)
	require.ErrorIs(err, core.ErrTooFewNodes)

	g, err := core.NewGraph(1)
	require.NoError(err)
	require.Equal(1, g.NodeCount())
	require.Zero(g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeAndHasEdgeBothOrientations() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(Node0, Node1, Weight4))

	require.True(s.g.HasEdge(Node0, Node1))
	require.True(s.g.HasEdge(Node1, Node0), "undirected edge must be visible reversed")
	require.False(s.g.HasEdge(Node0, Node2))

	w, ok := s.g.Weight(Node1, Node0)
	require.True(ok)
	require.EqualValues(Weight4, w)

	_, ok = s.g.Weight(Node2, Node3)
	require.False(ok)
}

func (s *GraphSuite) TestAddEdgeErrors() {
	require := require.New(s.T())

	cases := []struct {
		name string
		u, v int
		w    int64
		want error
	}{
		{"negative node", -1, Node1, Weight1, core.ErrNodeOutOfRange},
		{"node beyond N", Node0, NodesSmall, Weight1, core.ErrNodeOutOfRange},
		{"self loop", Node2, Node2, Weight1, core.ErrLoopNotAllowed},
		{"zero weight", Node0, Node1, 0, core.ErrBadWeight},
		{"negative weight", Node0, Node1, -3, core.ErrBadWeight},
	}
	for _, tc := range cases {
		err := s.g.AddEdge(tc.u, tc.v, tc.w)
		require.Truef(errors.Is(err, tc.want), "%s: want %v, got %v", tc.name, tc.want, err)
	}
	require.Zero(s.g.EdgeCount(), "rejected edges must not be stored")
}

func (s *GraphSuite) TestDuplicateRejectedInEitherOrientation() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(Node1, Node2, Weight3))

	require.ErrorIs(s.g.AddEdge(Node1, Node2, Weight4), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(s.g.AddEdge(Node2, Node1, Weight4), core.ErrMultiEdgeNotAllowed)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestEdgesPreserveInsertionOrderAndCopy() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(Node2, Node0, Weight10))
	require.NoError(s.g.AddEdge(Node0, Node1, Weight4))
	require.NoError(s.g.AddEdge(Node1, Node2, Weight3))

	edges := s.g.Edges()
	require.Equal([]core.Edge{
		{U: Node2, V: Node0, Weight: Weight10},
		{U: Node0, V: Node1, Weight: Weight4},
		{U: Node1, V: Node2, Weight: Weight3},
	}, edges)

	// Mutating the copy must not leak into the graph.
	edges[0].Weight = 99
	require.EqualValues(Weight10, s.g.Edges()[0].Weight)

	require.Equal([][3]int64{{2, 0, 10}, {0, 1, 4}, {1, 2, 3}}, s.g.Triples())
}

func (s *GraphSuite) TestAdjacencyMirrorsEachEdge() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(Node0, Node1, Weight4))
	require.NoError(s.g.AddEdge(Node1, Node2, Weight3))

	adj := s.g.Adjacency()
	require.Equal(NodesSmall, adj.Len())
	require.Equal([]core.Arc{{To: Node1, Weight: Weight4}}, adj.Neighbors(Node0))
	require.ElementsMatch([]core.Arc{
		{To: Node0, Weight: Weight4},
		{To: Node2, Weight: Weight3},
	}, adj.Neighbors(Node1))
	require.Empty(adj.Neighbors(Node3))
	require.Nil(adj.Neighbors(-1))
	require.Nil(adj.Neighbors(NodesSmall))
}

func (s *GraphSuite) TestEndpointsValidate() {
	require := require.New(s.T())
	require.NoError(core.Endpoints{Start: Node0, End: Node3}.Validate(NodesSmall))
	require.ErrorIs(core.Endpoints{Start: Node1, End: Node1}.Validate(NodesSmall), core.ErrBadEndpoints)
	require.ErrorIs(core.Endpoints{Start: -1, End: Node1}.Validate(NodesSmall), core.ErrBadEndpoints)
	require.ErrorIs(core.Endpoints{Start: Node0, End: NodesSmall}.Validate(NodesSmall), core.ErrBadEndpoints)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
