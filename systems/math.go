package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Clamp functions for common value ranges

// clampFloat clamps a value between min and max.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}

// easeToward moves v toward target by rate*dt of the remaining gap, never overshooting.
func easeToward(v, target, rate, dt float64) float64 {
	return v + (target-v)*clamp01(rate*dt)
}

// Vector helpers

// worldUp is +Y.
var worldUp = r3.Vec{Y: 1}

// horizontalDistance returns the distance between two points ignoring altitude.
func horizontalDistance(a, b r3.Vec) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// safeUnit returns the unit vector of v, or ok=false when v is too short to
// have a meaningful direction.
func safeUnit(v r3.Vec, minNormSq float64) (u r3.Vec, ok bool) {
	n2 := r3.Norm2(v)
	if n2 < minNormSq || n2 == 0 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/math.Sqrt(n2), v), true
}

// clampMagnitude scales v down so its length does not exceed maxLen.
func clampMagnitude(v r3.Vec, maxLen float64) r3.Vec {
	n := r3.Norm(v)
	if n <= maxLen || n == 0 {
		return v
	}
	return r3.Scale(maxLen/n, v)
}

// vecFrom converts a config offset to a vector.
func vecFrom(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}
