// Package target defines the handles through which the animation core writes
// into the rendering collaborator.
//
// Handles are owned by the renderer and looked up by scene-graph node name.
// A lookup that returns ok=false means the loaded asset has no such node (or
// it is not loaded yet); callers skip that attribute for the frame.
package target

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Transform is a node's local position and Euler rotation (radians).
type Transform interface {
	Position() math.Vec3
	SetPosition(math.Vec3)
	Rotation() math.Vec3
	SetRotation(math.Vec3)
}

// Material is the emissive part of a standard material.
type Material interface {
	Emissive() colorful.Color
	SetEmissive(colorful.Color)
	EmissiveIntensity() float32
	SetEmissiveIntensity(float32)
}

// Light is a point light.
type Light interface {
	Intensity() float32
	SetIntensity(float32)
}

// Camera is the active view pose.
type Camera interface {
	Position() math.Vec3
	SetPosition(math.Vec3)
	LookAt(math.Vec3)
}

// Resolver looks up handles by node name.
type Resolver interface {
	Transform(name string) (Transform, bool)
	Material(name string) (Material, bool)
	Light(name string) (Light, bool)
	Camera() (Camera, bool)
}
