package anim

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/pkg/math"
)

const frame = float32(1.0 / 60)

func TestVec3TrackPrimesFromHandle(t *testing.T) {
	g := scenegraph.New("test")
	g.AddNode("lever", math.V3(0, 0, 0), math.V3(0.2, 0, 0))

	tr := NewRotation("lever")
	require.True(t, tr.Damp(g, math.V3(0.2, 0, 0), 0.2, frame))
	assert.True(t, tr.Primed())
	assert.Equal(t, math.V3(0.2, 0, 0), g.Node("lever").Rotation())
}

func TestVec3TrackSkipsMissingAndResumes(t *testing.T) {
	g := scenegraph.New("test")
	g.AddNode("book", math.Vec3{}, math.Vec3{})
	tr := NewRotation("book")
	goal := math.V3(0, 0, 3)

	for i := 0; i < 10; i++ {
		tr.Damp(g, goal, 0.25, frame)
	}
	held := tr.Value()
	require.Greater(t, held.Z, float32(0))

	g.Remove("book")
	for i := 0; i < 10; i++ {
		assert.False(t, tr.Damp(g, goal, 0.25, frame))
	}
	assert.Equal(t, held, tr.Value(), "state must survive while the handle is absent")

	// A freshly loaded node starts at rest; the track continues from its own value.
	g.AddNode("book", math.Vec3{}, math.Vec3{})
	require.True(t, tr.Damp(g, goal, 0.25, frame))
	assert.Greater(t, g.Node("book").Rotation().Z, held.Z)
}

func TestVec3TrackAddIntegrates(t *testing.T) {
	g := scenegraph.New("test")
	g.AddNode("globe", math.Vec3{}, math.Vec3{})
	tr := NewRotation("globe")
	for i := 0; i < 100; i++ {
		tr.Add(g, math.V3(0, 0.1, 0))
	}
	assert.InDelta(t, 10, g.Node("globe").Rotation().Y, 1e-4)
}

func TestPositionTrack(t *testing.T) {
	g := scenegraph.New("test")
	g.AddNode("arrow", math.Vec3{}, math.Vec3{})
	tr := NewPosition("arrow")
	tr.Damp(g, math.V3(0, 0, -0.15), 0.1, 0.05)
	z := g.Node("arrow").Position().Z
	assert.Less(t, z, float32(0))
	assert.Greater(t, z, float32(-0.15))
	assert.Equal(t, Position.String(), "position")
}

func TestScalarTracks(t *testing.T) {
	g := scenegraph.New("test")
	g.AddMaterial("screen", colorful.Color{}, 0)
	g.AddLight("luz", colorful.Color{R: 1}, 0)

	em := NewEmissiveIntensity("screen")
	for i := 0; i < 300; i++ {
		em.Damp(g, 0.8, 0.5, frame)
	}
	assert.InDelta(t, 0.8, g.MaterialNode("screen").EmissiveIntensity(), 1e-3)

	li := NewLightIntensity("luz")
	require.True(t, li.Set(g, 4))
	assert.Equal(t, float32(4), g.LightNode("luz").Intensity())

	missingLight := NewLightIntensity("luz999")
	assert.False(t, missingLight.Set(g, 1))
}

func TestColorTrack(t *testing.T) {
	g := scenegraph.New("test")
	start, _ := colorful.Hex("#000510")
	goal, _ := colorful.Hex("#00aaff")
	g.AddMaterial("screen", start, 0)

	tr := NewEmissive("screen")
	for i := 0; i < 300; i++ {
		tr.Damp(g, goal, 0.5, frame)
	}
	got := g.MaterialNode("screen").Emissive()
	assert.InDelta(t, goal.G, got.G, 1e-3)
	assert.InDelta(t, goal.B, got.B, 1e-3)
}

func TestColorTrackHoldsSettledColour(t *testing.T) {
	g := scenegraph.New("test")
	c, _ := colorful.Hex("#000510")
	g.AddMaterial("screen", c, 0)

	tr := NewEmissive("screen")
	for i := 0; i < 60; i++ {
		tr.Damp(g, c, 0.5, frame)
	}
	assert.Equal(t, c, tr.Value())
	assert.Equal(t, c, g.MaterialNode("screen").Emissive())
}

func TestCameraRig(t *testing.T) {
	g := scenegraph.New("test")
	g.CameraNode().SetPosition(math.V3(0, 5, 50))
	rig := NewCameraRig(math.V3(0, 5, 0))

	for i := 0; i < 60; i++ {
		rig.Damp(g, math.V3(0, 5, 60), math.V3(0, 5, 0), 0.8, frame)
	}
	assert.Greater(t, g.CameraNode().Position().Z, float32(52))
	assert.Equal(t, math.V3(0, 5, 0), g.CameraNode().Target())

	rig.Set(g, math.V3(1, 2, 3), math.V3(4, 5, 6))
	assert.Equal(t, math.V3(1, 2, 3), rig.Position())
	assert.Equal(t, math.V3(4, 5, 6), g.CameraNode().Target())
}

func TestNilResolver(t *testing.T) {
	assert.False(t, NewRotation("x").Damp(nil, math.Vec3{}, 1, frame))
	assert.False(t, NewEmissive("x").Set(nil, colorful.Color{}))
	assert.False(t, NewCameraRig(math.Vec3{}).Set(nil, math.Vec3{}, math.Vec3{}))
}
