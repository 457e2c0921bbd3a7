// Package anim holds the per-attribute damp state that must survive between
// frames.
//
// A track is primed from the handle's current value on first resolution and
// from then on is the only writer of that attribute. When the handle is
// absent the track skips the frame and keeps its value, so motion resumes
// from where it stopped once the node reappears.
package anim

import (
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/engine/target"
	"github.com/Faultbox/porta-cabine/internal/logger"
	"github.com/Faultbox/porta-cabine/pkg/easing"
	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Attr selects which vector of a transform a track drives.
type Attr int

const (
	Position Attr = iota
	Rotation
)

func (a Attr) String() string {
	if a == Rotation {
		return "rotation"
	}
	return "position"
}

func missing(kind, node string) {
	logger.WarnOnce("missing:"+kind+":"+node, "target handle not resolved, skipping",
		zap.String("kind", kind),
		zap.String("node", node))
}

// Vec3Track drives one transform vector.
type Vec3Track struct {
	Node   string
	Attr   Attr
	value  math.Vec3
	primed bool
}

// NewRotation creates a rotation track for node.
func NewRotation(node string) *Vec3Track {
	return &Vec3Track{Node: node, Attr: Rotation}
}

// NewPosition creates a position track for node.
func NewPosition(node string) *Vec3Track {
	return &Vec3Track{Node: node, Attr: Position}
}

// Value returns the tracked value. It is the zero vector until primed.
func (t *Vec3Track) Value() math.Vec3 {
	return t.value
}

// Primed reports whether the track has ever resolved its handle.
func (t *Vec3Track) Primed() bool {
	return t.primed
}

func (t *Vec3Track) resolve(res target.Resolver) (target.Transform, bool) {
	if res == nil {
		return nil, false
	}
	h, ok := res.Transform(t.Node)
	if !ok || h == nil {
		missing("transform", t.Node)
		return nil, false
	}
	if !t.primed {
		if t.Attr == Rotation {
			t.value = h.Rotation()
		} else {
			t.value = h.Position()
		}
		t.primed = true
	}
	return h, true
}

func (t *Vec3Track) write(h target.Transform) {
	if t.Attr == Rotation {
		h.SetRotation(t.value)
	} else {
		h.SetPosition(t.value)
	}
}

// Damp moves the value toward goal. It reports whether the handle was
// resolved this frame.
func (t *Vec3Track) Damp(res target.Resolver, goal math.Vec3, smoothTime, dt float32) bool {
	h, ok := t.resolve(res)
	if !ok {
		return false
	}
	if t.Attr == Rotation {
		t.value = easing.DampE(t.value, goal, smoothTime, dt)
	} else {
		t.value = easing.Damp3(t.value, goal, smoothTime, dt)
	}
	t.write(h)
	return true
}

// Set writes v directly, for attributes driven by oscillators.
func (t *Vec3Track) Set(res target.Resolver, v math.Vec3) bool {
	h, ok := t.resolve(res)
	if !ok {
		return false
	}
	t.value = v
	t.write(h)
	return true
}

// Add integrates delta into the value, for unbounded spins.
func (t *Vec3Track) Add(res target.Resolver, delta math.Vec3) bool {
	h, ok := t.resolve(res)
	if !ok {
		return false
	}
	t.value = t.value.Add(delta)
	t.write(h)
	return true
}

// ScalarKind selects which scalar a ScalarTrack drives.
type ScalarKind int

const (
	EmissiveIntensity ScalarKind = iota
	LightIntensity
)

// ScalarTrack drives a material emissive intensity or a light intensity.
type ScalarTrack struct {
	Node   string
	Kind   ScalarKind
	value  float32
	primed bool
}

// NewEmissiveIntensity creates a track for a material's emissive intensity.
func NewEmissiveIntensity(material string) *ScalarTrack {
	return &ScalarTrack{Node: material, Kind: EmissiveIntensity}
}

// NewLightIntensity creates a track for a point light's intensity.
func NewLightIntensity(light string) *ScalarTrack {
	return &ScalarTrack{Node: light, Kind: LightIntensity}
}

// Value returns the tracked value.
func (t *ScalarTrack) Value() float32 {
	return t.value
}

func (t *ScalarTrack) apply(res target.Resolver, next func(float32) float32) bool {
	if res == nil {
		return false
	}
	switch t.Kind {
	case LightIntensity:
		h, ok := res.Light(t.Node)
		if !ok || h == nil {
			missing("light", t.Node)
			return false
		}
		if !t.primed {
			t.value, t.primed = h.Intensity(), true
		}
		t.value = next(t.value)
		h.SetIntensity(t.value)
	default:
		h, ok := res.Material(t.Node)
		if !ok || h == nil {
			missing("material", t.Node)
			return false
		}
		if !t.primed {
			t.value, t.primed = h.EmissiveIntensity(), true
		}
		t.value = next(t.value)
		h.SetEmissiveIntensity(t.value)
	}
	return true
}

// Damp moves the value toward goal.
func (t *ScalarTrack) Damp(res target.Resolver, goal, smoothTime, dt float32) bool {
	return t.apply(res, func(v float32) float32 {
		return easing.Damp(v, goal, smoothTime, dt)
	})
}

// Set writes v directly.
func (t *ScalarTrack) Set(res target.Resolver, v float32) bool {
	return t.apply(res, func(float32) float32 { return v })
}

// ColorTrack drives a material's emissive colour.
type ColorTrack struct {
	Node   string
	value  colorful.Color
	primed bool
}

// NewEmissive creates a track for a material's emissive colour.
func NewEmissive(material string) *ColorTrack {
	return &ColorTrack{Node: material}
}

// Value returns the tracked colour.
func (t *ColorTrack) Value() colorful.Color {
	return t.value
}

func (t *ColorTrack) apply(res target.Resolver, next func(colorful.Color) colorful.Color) bool {
	if res == nil {
		return false
	}
	h, ok := res.Material(t.Node)
	if !ok || h == nil {
		missing("material", t.Node)
		return false
	}
	if !t.primed {
		t.value, t.primed = h.Emissive(), true
	}
	t.value = next(t.value)
	h.SetEmissive(t.value)
	return true
}

// Damp moves the colour toward goal channel by channel.
func (t *ColorTrack) Damp(res target.Resolver, goal colorful.Color, smoothTime, dt float32) bool {
	return t.apply(res, func(c colorful.Color) colorful.Color {
		return easing.DampC(c, goal, smoothTime, dt)
	})
}

// Set writes c directly.
func (t *ColorTrack) Set(res target.Resolver, c colorful.Color) bool {
	return t.apply(res, func(colorful.Color) colorful.Color { return c })
}

// CameraRig drives the camera position and a damped look-at point. The
// look-at point has no getter on the handle, so it starts from an explicit
// value.
type CameraRig struct {
	position math.Vec3
	look     math.Vec3
	primed   bool
}

// NewCameraRig creates a rig whose look-at point starts at look.
func NewCameraRig(look math.Vec3) *CameraRig {
	return &CameraRig{look: look}
}

// Position returns the tracked camera position.
func (r *CameraRig) Position() math.Vec3 {
	return r.position
}

// Look returns the tracked look-at point.
func (r *CameraRig) Look() math.Vec3 {
	return r.look
}

func (r *CameraRig) resolve(res target.Resolver) (target.Camera, bool) {
	if res == nil {
		return nil, false
	}
	cam, ok := res.Camera()
	if !ok || cam == nil {
		missing("camera", "camera")
		return nil, false
	}
	if !r.primed {
		r.position, r.primed = cam.Position(), true
	}
	return cam, true
}

// Damp moves position and look-at toward their goals with one smooth time.
func (r *CameraRig) Damp(res target.Resolver, position, look math.Vec3, smoothTime, dt float32) bool {
	cam, ok := r.resolve(res)
	if !ok {
		return false
	}
	r.position = easing.Damp3(r.position, position, smoothTime, dt)
	r.look = easing.Damp3(r.look, look, smoothTime, dt)
	cam.SetPosition(r.position)
	cam.LookAt(r.look)
	return true
}

// Set places the camera directly.
func (r *CameraRig) Set(res target.Resolver, position, look math.Vec3) bool {
	cam, ok := r.resolve(res)
	if !ok {
		return false
	}
	r.position, r.look = position, look
	cam.SetPosition(r.position)
	cam.LookAt(r.look)
	return true
}
