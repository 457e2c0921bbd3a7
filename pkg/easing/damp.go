// Package easing implements frame-rate independent exponential damping.
//
// Every function moves the current value a fraction 1-exp(-dt/smoothTime) of
// the remaining distance toward the target. Halving dt and calling twice
// lands on the same value as one call with the full dt.
package easing

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Factor returns the fraction of the remaining distance covered in dt seconds.
// A non-positive dt yields 0. A non-positive smoothTime yields 1 (snap).
func Factor(smoothTime, dt float32) float32 {
	if dt <= 0 {
		return 0
	}
	if smoothTime <= 0 {
		return 1
	}
	return 1 - math32.Exp(-dt/smoothTime)
}

// Damp returns the next scalar value for one frame.
func Damp(current, target, smoothTime, dt float32) float32 {
	f := Factor(smoothTime, dt)
	if f == 0 {
		return current
	}
	if f >= 1 {
		return target
	}
	next := current + (target-current)*f
	// Rounding must never carry the value past the target.
	if (target >= current && next > target) || (target <= current && next < target) {
		return target
	}
	return next
}

// Damp3 damps each axis of a position independently.
func Damp3(current, target math.Vec3, smoothTime, dt float32) math.Vec3 {
	return math.Vec3{
		X: Damp(current.X, target.X, smoothTime, dt),
		Y: Damp(current.Y, target.Y, smoothTime, dt),
		Z: Damp(current.Z, target.Z, smoothTime, dt),
	}
}

// DampE damps Euler angles axis by axis. This is only a fair approximation of
// a rotation for the small angular ranges the fixtures use; it is not a
// general orientation interpolation.
func DampE(current, target math.Vec3, smoothTime, dt float32) math.Vec3 {
	return Damp3(current, target, smoothTime, dt)
}

// DampC damps each RGB channel of a colour independently. Channels stay in
// float64 so a settled colour is returned bit for bit.
func DampC(current, target colorful.Color, smoothTime, dt float32) colorful.Color {
	f := float64(Factor(smoothTime, dt))
	if f == 0 {
		return current
	}
	if f >= 1 {
		return target
	}
	return colorful.Color{
		R: damp64(current.R, target.R, f),
		G: damp64(current.G, target.G, f),
		B: damp64(current.B, target.B, f),
	}
}

func damp64(current, target, f float64) float64 {
	next := current + (target-current)*f
	if (target >= current && next > target) || (target <= current && next < target) {
		return target
	}
	return next
}
