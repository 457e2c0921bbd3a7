// Package picking turns screen positions into pointer events by casting a
// ray from the camera through the scene's hit boxes.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Projection parameters shared by the viewer and the picker.
const (
	FovY = math32.Pi / 4
	Near = 0.1
	Far  = 1000
)

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at distance t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ViewProjection builds the matrix for cam at the given aspect ratio.
func ViewProjection(cam *scenegraph.Camera, aspect float32) math.Mat4 {
	view := math.LookAt(cam.Position(), cam.Target(), math.V3(0, 1, 0))
	return math.Perspective(FovY, aspect, Near, Far).Mul(view)
}

// ScreenToRay converts pixel coordinates to a world-space ray.
func ScreenToRay(x, y, width, height float32, invViewProj math.Mat4) Ray {
	ndcX := 2*x/width - 1
	ndcY := 1 - 2*y/height

	near := invViewProj.Project(math.V3(ndcX, ndcY, -1))
	far := invViewProj.Project(math.V3(ndcX, ndcY, 1))
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectBox runs the slab test against b. It returns the entry distance,
// or the exit distance when the ray starts inside.
func (r Ray) IntersectBox(b scenegraph.HitBox) (float32, bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	o := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Pick returns the nearest hit box target along r.
func Pick(r Ray, boxes []scenegraph.HitBox) (string, bool) {
	best := float32(math32.MaxFloat32)
	name := ""
	for _, b := range boxes {
		if t, ok := r.IntersectBox(b); ok && t < best {
			best = t
			name = b.Target
		}
	}
	return name, name != ""
}

// PickScreen casts through pixel (x, y) of a width x height viewport.
func PickScreen(g *scenegraph.Graph, x, y, width, height float32) (string, bool) {
	if g == nil || width <= 0 || height <= 0 {
		return "", false
	}
	inv, ok := ViewProjection(g.CameraNode(), width/height).Inverse()
	if !ok {
		return "", false
	}
	return Pick(ScreenToRay(x, y, width, height, inv), g.HitBoxes())
}
