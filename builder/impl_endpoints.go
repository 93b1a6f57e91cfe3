package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathquiz/core"
)

// PickEndpoints draws start uniformly in [0, n) and then draws end uniformly
// in [0, n) until it differs from start.
//
// Errors: ErrTooFewVertices if n < 2, ErrNeedRandSource if rng is nil.
func PickEndpoints(n int, rng *rand.Rand) (core.Endpoints, error) {
	if err := validateMin(MethodEndpoints, n, MinEndpointNodes); err != nil {
		return core.Endpoints{}, err
	}
	if rng == nil {
		return core.Endpoints{}, builderErrorf(MethodEndpoints, ErrNeedRandSource, "n=%d", n)
	}

	start := rng.Intn(n)
	end := rng.Intn(n)
	for end == start {
		end = rng.Intn(n)
	}

	return core.Endpoints{Start: start, End: end}, nil
}
