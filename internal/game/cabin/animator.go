package cabin

import (
	"github.com/Faultbox/porta-cabine/internal/anim"
	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/engine/target"
	"github.com/Faultbox/porta-cabine/pkg/math"
)

type lightTracks struct {
	emissive  *anim.ColorTrack
	intensity *anim.ScalarTrack
	light     *anim.ScalarTrack
}

// Animator owns the damp state of every cabin attribute. Each attribute has
// exactly one track, so the Animator is the single writer of its handle.
type Animator struct {
	tun Tuning

	book1      *anim.Vec3Track
	cover      *anim.Vec3Track
	ribbon     *anim.Vec3Track
	ribbonTail *anim.Vec3Track
	lever1     *anim.Vec3Track
	lever2     *anim.Vec3Track
	arrowRight *anim.Vec3Track
	arrowLeft  *anim.Vec3Track
	globe      *anim.Vec3Track

	artefact    *anim.Vec3Track
	gauge1      *anim.Vec3Track
	gauge2      *anim.Vec3Track
	hologramPos *anim.Vec3Track
	hologramRot *anim.Vec3Track

	screenIntensity *anim.ScalarTrack
	screenColor     *anim.ColorTrack

	lights map[string]lightTracks
	camera *anim.CameraRig
}

// NewAnimator creates unprimed tracks for every cabin attribute.
func NewAnimator(tun Tuning) *Animator {
	a := &Animator{
		tun:             tun,
		book1:           anim.NewRotation(scenegraph.Book1Node),
		cover:           anim.NewRotation(scenegraph.Book2CoverNode),
		ribbon:          anim.NewRotation(scenegraph.RibbonNode),
		ribbonTail:      anim.NewRotation(scenegraph.RibbonTailNode),
		lever1:          anim.NewRotation(scenegraph.Lever1Node),
		lever2:          anim.NewRotation(scenegraph.Lever2Node),
		arrowRight:      anim.NewPosition(scenegraph.ArrowRightNode),
		arrowLeft:       anim.NewPosition(scenegraph.ArrowLeftNode),
		globe:           anim.NewRotation(scenegraph.GlobeNode),
		artefact:        anim.NewRotation(scenegraph.ArtefactNode),
		gauge1:          anim.NewRotation(scenegraph.Gauge1Node),
		gauge2:          anim.NewRotation(scenegraph.Gauge2Node),
		hologramPos:     anim.NewPosition(scenegraph.HologramNode),
		hologramRot:     anim.NewRotation(scenegraph.HologramNode),
		screenIntensity: anim.NewEmissiveIntensity(scenegraph.ScreenMaterial),
		screenColor:     anim.NewEmissive(scenegraph.ScreenMaterial),
		lights:          make(map[string]lightTracks, len(tun.Lights)),
		camera:          anim.NewCameraRig(cameraLook),
	}
	for _, l := range tun.Lights {
		a.lights[l.Node] = lightTracks{
			emissive:  anim.NewEmissive(l.Node),
			intensity: anim.NewEmissiveIntensity(l.Node),
			light:     anim.NewLightIntensity(l.Node),
		}
	}
	return a
}

// Live returns the current values that gated targets read.
func (a *Animator) Live() Live {
	return Live{CoverRotation: a.cover.Value().Z}
}

// Apply moves every attribute one frame toward ts. Attributes whose handle
// is missing are skipped and keep their damp state.
func (a *Animator) Apply(res target.Resolver, ts TargetSet, dt float32) {
	tun := a.tun

	a.book1.Damp(res, ts.Book1, tun.BookSmooth, dt)
	a.cover.Damp(res, ts.Cover, tun.CoverSmooth, dt)
	a.ribbon.Damp(res, ts.Ribbon, tun.RibbonSmooth, dt)
	a.ribbonTail.Damp(res, ts.RibbonTail, tun.RibbonTailSmooth, dt)
	a.lever1.Damp(res, ts.Lever1, tun.LeverSmooth, dt)
	a.lever2.Damp(res, ts.Lever2, tun.LeverSmooth, dt)
	a.arrowRight.Damp(res, ts.ArrowRight, tun.PressSmooth, dt)
	a.arrowLeft.Damp(res, ts.ArrowLeft, tun.PressSmooth, dt)

	if ts.GlobeSpin != 0 {
		a.globe.Add(res, math.V3(0, ts.GlobeSpin, 0))
	}

	a.screenIntensity.Damp(res, ts.ScreenIntensity, tun.ScreenSmooth, dt)
	a.screenColor.Damp(res, ts.ScreenColor, tun.ScreenSmooth, dt)

	a.artefact.Set(res, ts.Artefact)
	a.gauge1.Set(res, ts.Gauge1)
	a.gauge2.Set(res, ts.Gauge2)
	a.hologramPos.Set(res, ts.HologramPos)
	a.hologramRot.Set(res, ts.HologramRot)
	a.camera.Set(res, ts.CameraPos, ts.CameraLook)

	for _, l := range ts.Lights {
		tr, ok := a.lights[l.Node]
		if !ok {
			continue
		}
		tr.emissive.Set(res, l.Color)
		tr.intensity.Set(res, l.Emissive)
		tr.light.Set(res, l.Intensity)
	}
}

// GlobeAngle returns the integrated globe rotation.
func (a *Animator) GlobeAngle() float32 {
	return a.globe.Value().Y
}
