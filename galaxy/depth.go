package galaxy

import (
	"math"
	"math/rand"
	"strings"
)

// depthExponent shapes where a region's planets sit on the flattening axis
//
// A uniform sample u in [0,1] is remapped around the midplane by
// |2u-1|^exp: exponents above 1 pull depths toward 0.5 (core regions sit
// near the midplane's thick bulge), below 1 push toward the extremes (rim
// regions hug the thin faces of the disc)
var depthExponents = []struct {
	match string
	exp   float64
}{
	{"deep core", 2.5},
	{"core", 2.0},
	{"colonies", 1.6},
	{"inner rim", 1.3},
	{"expansion region", 1.1},
	{"mid rim", 0.9},
	{"outer rim", 0.7},
	{"unknown regions", 0.6},
	{"wild space", 0.6},
}

const defaultDepthExponent = 1.0

// DepthFactor samples a region-biased depth factor in [0,1]
func DepthFactor(region string, rng *rand.Rand) float64 {
	exp := defaultDepthExponent
	lower := strings.ToLower(region)
	for _, e := range depthExponents {
		if strings.Contains(lower, e.match) {
			exp = e.exp
			break
		}
	}

	u := rng.Float64()*2 - 1
	sign := 1.0
	if u < 0 {
		sign = -1.0
	}
	return 0.5 + sign*math.Pow(math.Abs(u), exp)*0.5
}
