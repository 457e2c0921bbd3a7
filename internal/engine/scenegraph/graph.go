// Package scenegraph is an in-memory rendering collaborator: a flat table of
// named transforms, materials and lights plus one camera. The headless
// runner, the SDL viewer and the tests all animate through it.
package scenegraph

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/porta-cabine/internal/engine/target"
	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Node is a transform handle.
type Node struct {
	Name     string
	position math.Vec3
	rotation math.Vec3
}

func (n *Node) Position() math.Vec3 { return n.position }
func (n *Node) SetPosition(p math.Vec3) { n.position = p }
func (n *Node) Rotation() math.Vec3 { return n.rotation }
func (n *Node) SetRotation(r math.Vec3) { n.rotation = r }

// Material is a material handle.
type Material struct {
	Name      string
	emissive  colorful.Color
	intensity float32
}

func (m *Material) Emissive() colorful.Color { return m.emissive }
func (m *Material) SetEmissive(c colorful.Color) { m.emissive = c }
func (m *Material) EmissiveIntensity() float32 { return m.intensity }
func (m *Material) SetEmissiveIntensity(v float32) { m.intensity = v }

// Light is a point light handle.
type Light struct {
	Name      string
	Color     colorful.Color
	intensity float32
}

func (l *Light) Intensity() float32 { return l.intensity }
func (l *Light) SetIntensity(v float32) { l.intensity = v }

// Camera is the view pose handle.
type Camera struct {
	position math.Vec3
	lookAt   math.Vec3
}

func (c *Camera) Position() math.Vec3 { return c.position }
func (c *Camera) SetPosition(p math.Vec3) { c.position = p }
func (c *Camera) LookAt(p math.Vec3) { c.lookAt = p }

// Target returns the last point passed to LookAt.
func (c *Camera) Target() math.Vec3 { return c.lookAt }

// Graph holds all handles of one loaded scene.
type Graph struct {
	Name      string
	nodes     map[string]*Node
	materials map[string]*Material
	lights    map[string]*Light
	camera    *Camera
	hits      []HitBox
}

var _ target.Resolver = (*Graph)(nil)

// New creates an empty graph with a camera at the origin.
func New(name string) *Graph {
	return &Graph{
		Name:      name,
		nodes:     make(map[string]*Node),
		materials: make(map[string]*Material),
		lights:    make(map[string]*Light),
		camera:    &Camera{},
	}
}

// AddNode inserts (or replaces) a transform.
func (g *Graph) AddNode(name string, position, rotation math.Vec3) *Node {
	n := &Node{Name: name, position: position, rotation: rotation}
	g.nodes[name] = n
	return n
}

// AddMaterial inserts (or replaces) a material.
func (g *Graph) AddMaterial(name string, emissive colorful.Color, intensity float32) *Material {
	m := &Material{Name: name, emissive: emissive, intensity: intensity}
	g.materials[name] = m
	return m
}

// AddLight inserts (or replaces) a point light.
func (g *Graph) AddLight(name string, color colorful.Color, intensity float32) *Light {
	l := &Light{Name: name, Color: color, intensity: intensity}
	g.lights[name] = l
	return l
}

// Remove deletes every handle registered under name.
func (g *Graph) Remove(name string) {
	delete(g.nodes, name)
	delete(g.materials, name)
	delete(g.lights, name)
}

// Node returns the concrete node, or nil.
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// MaterialNode returns the concrete material, or nil.
func (g *Graph) MaterialNode(name string) *Material {
	return g.materials[name]
}

// LightNode returns the concrete light, or nil.
func (g *Graph) LightNode(name string) *Light {
	return g.lights[name]
}

// CameraNode returns the concrete camera.
func (g *Graph) CameraNode() *Camera {
	return g.camera
}

// Transform implements target.Resolver.
func (g *Graph) Transform(name string) (target.Transform, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, false
	}
	return n, true
}

// Material implements target.Resolver.
func (g *Graph) Material(name string) (target.Material, bool) {
	m, ok := g.materials[name]
	if !ok {
		return nil, false
	}
	return m, true
}

// Light implements target.Resolver.
func (g *Graph) Light(name string) (target.Light, bool) {
	l, ok := g.lights[name]
	if !ok {
		return nil, false
	}
	return l, true
}

// Camera implements target.Resolver.
func (g *Graph) Camera() (target.Camera, bool) {
	if g.camera == nil {
		return nil, false
	}
	return g.camera, true
}
