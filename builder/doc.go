// Package builder generates the random connected weighted graphs that back
// every pathquiz fixture.
//
// A fixture graph is assembled by composing Constructors over a fresh
// core.Graph, all drawing from ONE seeded *rand.Rand so that a seed fully
// determines the edge list and the endpoints:
//
//	RandomSpanningTree()       n-1 edges; connectivity by construction
//	RandomExtraEdges(maxExtra) 0..maxExtra extra edges, duplicates skipped
//	PickEndpoints(n, rng)      start uniform, end resampled until != start
//
// Generate runs the three steps in that order:
//
//	g, ep, err := builder.Generate(50, 20, builder.WithSeed(42+2))
//
// Spanning tree:
//
//	used = {0}, unused = {1..n-1}
//	while unused is not empty:
//	    from := uniform(used); to := uniform(unused); w := weightFn(rng)
//	    add {from,to,w}; move to from unused into used
//
// Extra edges:
//
//	Sample k in [0, maxExtra]. For each of the k draws pick u, v uniformly in
//	[0,n); self-loops and existing pairs are skipped WITHOUT resampling, so the
//	realized count may be lower than k. This slack is intentional.
//
// Fixed topologies with known answers (tests, benchmarks):
//
//	Path()            0-1-...-(n-1)
//	Cycle()           Path plus the closing edge (n-1)-0
//	Star()            hub RootNode joined to every other node
//	Complete()        K_n
//	RandomSparse(p)   G(n,p); may be disconnected
//
// Options:
//
//	WithSeed(seed)          fresh rand.New(rand.NewSource(seed))
//	WithRand(r)             caller-owned RNG (panics on nil)
//	WithWeightFn(fn)        custom weight policy (panics on nil)
//	WithUniformWeight(a,b)  integer weights uniform in [a,b]
//
// Errors:
//
//	ErrTooFewVertices  n below the constructor minimum (Generate needs n ≥ 2)
//	ErrBadWeightRange  max_weight < 1
//	ErrNeedRandSource  stochastic step without an RNG
//	ErrInvalidProbability  RandomSparse with p outside [0,1]
//	ErrConstructFailed nil constructor, or an edge rejected by core.Graph
//
// All errors are wrapped with the method name and must be matched with errors.Is.
package builder
