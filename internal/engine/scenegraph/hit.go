package scenegraph

import "github.com/Faultbox/porta-cabine/pkg/math"

// HitBox is an axis-aligned pick volume in world space for one target.
type HitBox struct {
	Target string
	Min    math.Vec3
	Max    math.Vec3
}

// AddHitBox registers a pick volume. Corners may be given in any order.
func (g *Graph) AddHitBox(target string, a, b math.Vec3) {
	g.hits = append(g.hits, HitBox{
		Target: target,
		Min:    math.V3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max:    math.V3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
	})
}

// HitBoxes returns the registered pick volumes.
func (g *Graph) HitBoxes() []HitBox {
	return g.hits
}
