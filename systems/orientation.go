package systems

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Model axes. The flyer mesh faces -Z with +Y up.
var (
	modelForward = r3.Vec{Z: -1}
	yawAxis      = r3.Vec{Y: 1}
	pitchAxis    = r3.Vec{X: 1}
	rollAxis     = r3.Vec{Z: 1}
)

// identityRotation is the orientation of an unmoved model.
var identityRotation = quat.Number{Real: 1}

// lookRotation returns the rotation that carries modelForward onto dir while
// keeping the wings level, then rolls by bank around the body axis.
// dir must be a unit vector.
func lookRotation(dir r3.Vec, bank float64) quat.Number {
	yaw := math.Atan2(-dir.X, -dir.Z)
	pitch := math.Asin(clampFloat(dir.Y, -1, 1))

	qYaw := quat.Number(r3.NewRotation(yaw, yawAxis))
	qPitch := quat.Number(r3.NewRotation(pitch, pitchAxis))
	qRoll := quat.Number(r3.NewRotation(bank, rollAxis))

	// Roll first, then pitch, then yaw
	return quat.Mul(quat.Mul(qYaw, qPitch), qRoll)
}

// bankAngle returns the roll for a heading change from prev to next over dt.
// Turning right rolls the right wing down, which is a negative roll about +Z.
func bankAngle(prev, next r3.Vec, dt, gain, maxBank float64) float64 {
	if dt <= 0 {
		return 0
	}
	right, ok := safeUnit(r3.Cross(prev, worldUp), 1e-9)
	if !ok {
		return 0
	}
	turnRate := r3.Dot(next, right) / dt
	return -clampFloat(turnRate*gain, -maxBank, maxBank)
}

// Forward returns the world direction the model's nose points in for q.
func Forward(q quat.Number) r3.Vec {
	return r3.Rotation(q).Rotate(modelForward)
}

// Rotate applies q to a model-space vector.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(q).Rotate(v)
}
