// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSpanningTree is the canonical name for the RandomSpanningTree constructor.
	MethodSpanningTree = "RandomSpanningTree"
	// MethodExtraEdges is the canonical name for the RandomExtraEdges constructor.
	MethodExtraEdges = "RandomExtraEdges"
	// MethodEndpoints is the canonical name for PickEndpoints.
	MethodEndpoints = "PickEndpoints"
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// RootNode is the node the spanning tree grows from.
const RootNode = 0

// MinTreeNodes is the smallest graph RandomSpanningTree accepts (a lone node, no edges).
const MinTreeNodes = 1

// MinGenerateNodes is the smallest fixture graph: two distinct endpoints are required.
const MinGenerateNodes = 2

// MinEndpointNodes is the smallest node count PickEndpoints can serve.
const MinEndpointNodes = 2

//-----------------------------------------------------------------------------
// Weights
//-----------------------------------------------------------------------------

// MinWeight is the smallest admissible edge weight.
const MinWeight int64 = 1

// DefaultEdgeWeight is the weight assigned when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// DefaultMaxWeight matches the fixture default for max_weight.
const DefaultMaxWeight = 20
