// Package overlay computes the per-frame values the renderer draws on top of
// the scene: the fade quad's opacity and the background tint.
package overlay

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/pkg/easing"
)

// Fader eases the fade quad toward its target.
type Fader struct {
	smooth  float32
	opacity float32
}

// NewFader creates a fader that covers most of the distance in d.
func NewFader(d time.Duration) *Fader {
	return &Fader{smooth: float32(d.Seconds()) / 3}
}

// Update moves the opacity toward target and returns it.
func (f *Fader) Update(target, dt float32) float32 {
	f.opacity = easing.Damp(f.opacity, target, f.smooth, dt)
	return f.opacity
}

// Opacity returns the last computed opacity.
func (f *Fader) Opacity() float32 {
	return f.opacity
}

// Background returns the clear colour for g: the screen glow in the cabin,
// the lantern glow at the door, black when neither material exists.
func Background(g *scenegraph.Graph) colorful.Color {
	if g == nil {
		return colorful.Color{}
	}
	for _, name := range []string{scenegraph.ScreenMaterial, scenegraph.LanternMaterial} {
		m := g.MaterialNode(name)
		if m == nil {
			continue
		}
		k := float64(m.EmissiveIntensity())
		if k > 1 {
			k = 1
		}
		c := m.Emissive()
		return colorful.Color{R: c.R * k * 0.25, G: c.G * k * 0.25, B: c.B * k * 0.25}.Clamped()
	}
	return colorful.Color{}
}

// Title builds the window title from the overlay text.
func Title(base, message, page string, textVisible bool) string {
	switch {
	case textVisible && message != "":
		return base + " | " + message
	case page != "":
		return base + " | " + page
	default:
		return base
	}
}
