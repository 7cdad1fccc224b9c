// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DrawFn produces one item value or cost. Implementations must use only the
// supplied RNG as their source of randomness so catalogs stay reproducible.
type DrawFn func(rng *rand.Rand) float64

// ConstantDraw returns a DrawFn that always yields v.
// Panics if v is NaN or ±Inf.
func ConstantDraw(v float64) DrawFn {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("ConstantDraw: value must be finite, got %v", v))
	}
	return func(*rand.Rand) float64 { return v }
}

// UniformDraw returns a DrawFn sampling ∼U[min, max).
// When rng is nil the draw degenerates to min.
// Panics if the bounds are not finite or min > max.
func UniformDraw(min, max float64) DrawFn {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min > max {
		panic(fmt.Sprintf("UniformDraw: invalid range [%v,%v)", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// UniformIntDraw returns a DrawFn sampling integers uniformly from [min, max],
// both ends inclusive. When rng is nil the draw degenerates to min.
// Panics if min > max.
func UniformIntDraw(min, max int) DrawFn {
	if min > max {
		panic(fmt.Sprintf("UniformIntDraw: min ≤ max required, got [%d,%d]", min, max))
	}
	span := max - min + 1
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}
		return float64(min + rng.Intn(span))
	}
}
