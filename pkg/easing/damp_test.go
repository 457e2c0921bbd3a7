package easing

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/porta-cabine/pkg/math"
)

func TestDampZeroDeltaIsNoop(t *testing.T) {
	assert.Equal(t, float32(1.25), Damp(1.25, 10, 0.3, 0))
	assert.Equal(t, float32(1.25), Damp(1.25, 10, 0, 0))
	assert.Equal(t, float32(-4), Damp(-4, 10, 0.3, -0.01))
}

func TestDampFixedPoint(t *testing.T) {
	for _, dt := range []float32{0, 0.001, 0.016, 0.5, 10} {
		assert.Equal(t, float32(3), Damp(3, 3, 0.25, dt))
	}
}

func TestDampNonPositiveSmoothTimeSnaps(t *testing.T) {
	assert.Equal(t, float32(7), Damp(0, 7, 0, 0.016))
	assert.Equal(t, float32(7), Damp(0, 7, -1, 0.016))
}

func TestDampConvergesMonotonically(t *testing.T) {
	tests := []struct {
		name          string
		start, target float32
	}{
		{"upward", 0, 3},
		{"downward", 60, 50},
		{"negative", 0, -1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.start
			prevGap := abs(tt.target - v)
			for i := 0; i < 600; i++ {
				v = Damp(v, tt.target, 0.25, 1.0/60)
				gap := abs(tt.target - v)
				if gap > prevGap {
					t.Fatalf("step %d: gap grew from %v to %v", i, prevGap, gap)
				}
				if (tt.target > tt.start && v > tt.target) || (tt.target < tt.start && v < tt.target) {
					t.Fatalf("step %d: overshoot %v past %v", i, v, tt.target)
				}
				prevGap = gap
			}
			assert.InDelta(t, tt.target, v, 1e-4)
		})
	}
}

func TestDampFrameRateIndependent(t *testing.T) {
	coarse := float32(0)
	fine := float32(0)
	for i := 0; i < 30; i++ {
		coarse = Damp(coarse, 10, 0.8, 1.0/30)
	}
	for i := 0; i < 60; i++ {
		fine = Damp(fine, 10, 0.8, 1.0/60)
	}
	assert.InDelta(t, coarse, fine, 1e-3)
}

func TestDampRetargetIsContinuous(t *testing.T) {
	v := float32(0)
	for i := 0; i < 10; i++ {
		v = Damp(v, 1, 0.25, 1.0/60)
	}
	before := v
	v = Damp(v, -1, 0.25, 1.0/60)
	// One frame can only move a fraction of the way.
	assert.Less(t, before-v, float32(0.2))
	assert.Less(t, v, before)
}

func TestDamp3PerAxis(t *testing.T) {
	cur := math.V3(0, 5, 50)
	target := math.V3(0, 5, 60)
	next := Damp3(cur, target, 0.8, 0.1)
	assert.Equal(t, float32(0), next.X)
	assert.Equal(t, float32(5), next.Y)
	assert.Greater(t, next.Z, float32(50))
	assert.Less(t, next.Z, float32(60))
}

func TestDampEMatchesDamp3(t *testing.T) {
	cur := math.V3(0.1, -0.2, 0.3)
	target := math.V3(0.4, 0, -1.6)
	assert.Equal(t, Damp3(cur, target, 0.2, 0.05), DampE(cur, target, 0.2, 0.05))
}

func TestDampCPerChannel(t *testing.T) {
	from, _ := colorful.Hex("#000510")
	to, _ := colorful.Hex("#00aaff")
	c := from
	for i := 0; i < 300; i++ {
		c = DampC(c, to, 0.5, 1.0/60)
	}
	assert.InDelta(t, to.R, c.R, 1e-3)
	assert.InDelta(t, to.G, c.G, 1e-3)
	assert.InDelta(t, to.B, c.B, 1e-3)

	assert.Equal(t, from, DampC(from, to, 0.5, 0))
}

func TestDampCKeepsSettledColour(t *testing.T) {
	c, _ := colorful.Hex("#000510")
	assert.Equal(t, c, DampC(c, colorful.Color{R: 1}, 0.5, 0))
	assert.Equal(t, c, DampC(c, colorful.Color{R: 1}, 0.5, -0.1))
	for _, dt := range []float32{0.001, 0.016, 0.5, 10} {
		assert.Equal(t, c, DampC(c, c, 0.5, dt))
	}

	// Repeated frames must not drift a colour that already sits on its target.
	v := c
	for i := 0; i < 120; i++ {
		v = DampC(v, c, 0.5, 1.0/60)
	}
	assert.Equal(t, c, v)
}

func TestFactor(t *testing.T) {
	assert.Equal(t, float32(0), Factor(0.5, 0))
	assert.Equal(t, float32(1), Factor(0, 0.1))
	f := Factor(0.5, 0.5)
	assert.InDelta(t, 0.6321, f, 1e-3)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
