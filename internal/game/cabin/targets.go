package cabin

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/pkg/math"
	"github.com/Faultbox/porta-cabine/pkg/wave"
)

// Ambient motion of the fixtures, all stateless functions of elapsed time.
var (
	artefactWobble = wave.Osc{Shape: wave.Sine, Speed: 2, Amplitude: 1.2}
	gauge1Needle   = wave.Osc{Shape: wave.Sine, Speed: 2, Amplitude: 1}
	gauge2Needle   = wave.Osc{Shape: wave.Cosine, Speed: 2, Amplitude: 1.8}

	hologramX    = wave.Osc{Shape: wave.Sine, Speed: 0.7, Amplitude: 0.03, Bias: -0.122}
	hologramY    = wave.Osc{Shape: wave.Cosine, Speed: 0.6, Amplitude: 0.02, Bias: 6.137}
	hologramRoll = wave.Osc{Shape: wave.Sine, Speed: 0.2, Amplitude: 0.005}

	swayX = wave.Osc{Shape: wave.Sine, Speed: 0.1, Amplitude: 0.5}
	swayY = wave.Osc{Shape: wave.Sine, Speed: 0.5, Amplitude: 0.1, Bias: 1.8}
)

const (
	hologramDepth = -5.516
	cameraDepth   = 45
)

var (
	hologramPitch = float32(stdmath.Pi / 2)
	cameraLook    = math.V3(0, 5, 0)
)

// Light is one blinking indicator with its colour parsed.
type Light struct {
	Node  string
	Color colorful.Color
	Speed float32
	Phase float32
}

// Tuning is the cabin configuration with colours parsed once.
type Tuning struct {
	config.CabinConfig
	ScreenOn  colorful.Color
	ScreenOff colorful.Color
	Lights    []Light
}

// NewTuning parses the colours of cfg. Colours are assumed validated by
// config.Validate; an unparsable one renders black.
func NewTuning(cfg config.CabinConfig) Tuning {
	t := Tuning{
		CabinConfig: cfg,
		ScreenOn:    config.ColorOrBlack(cfg.ScreenOnColor),
		ScreenOff:   config.ColorOrBlack(cfg.ScreenOffColor),
		Lights:      make([]Light, len(cfg.Lights)),
	}
	for i, l := range cfg.Lights {
		t.Lights[i] = Light{
			Node:  l.Node,
			Color: config.ColorOrBlack(l.Color),
			Speed: l.Speed,
			Phase: l.Phase,
		}
	}
	return t
}

// Live carries the current (already damped) values that gated targets
// depend on, plus the per-frame noise sample. It is read before any
// attribute of the frame is written.
type Live struct {
	CoverRotation float32
	Noise         float32 // [0, 1)
}

// LightLevel is the frame value of one blinking light.
type LightLevel struct {
	Node      string
	Color     colorful.Color
	Emissive  float32
	Intensity float32
}

// TargetSet holds every goal for one frame. Damped goals are approached with
// the tuning's smooth times; direct values are written as is.
type TargetSet struct {
	// Damped rotations.
	Book1      math.Vec3
	Cover      math.Vec3
	Ribbon     math.Vec3
	RibbonTail math.Vec3
	Lever1     math.Vec3
	Lever2     math.Vec3

	// Damped positions.
	ArrowRight math.Vec3
	ArrowLeft  math.Vec3

	// Damped screen material.
	ScreenIntensity float32
	ScreenColor     colorful.Color

	// Integrated: radians to add to the globe this frame.
	GlobeSpin float32

	// Direct.
	Artefact    math.Vec3
	Gauge1      math.Vec3
	Gauge2      math.Vec3
	HologramPos math.Vec3
	HologramRot math.Vec3
	CameraPos   math.Vec3
	CameraLook  math.Vec3
	Lights      []LightLevel
}

// ComputeTargets derives every goal of a frame from the snapshot, the clock
// and the live parent values. It has no side effects.
func ComputeTargets(tun Tuning, s Snapshot, c clock.Clock, live Live) TargetSet {
	t := c.T()
	ts := TargetSet{
		Book1:      math.V3(0, 0, pick(s.Book1Open, tun.BookOpenAngle)),
		Cover:      math.V3(0, 0, pick(s.Book2Open, tun.CoverOpenAngle)),
		RibbonTail: math.V3(0, 0, pick(s.Book2Open, tun.RibbonTailAngle)),
		Lever1:     math.V3(pick(s.Lever1Active, tun.LeverAngle), 0, 0),
		Lever2:     math.V3(pick(s.Lever2Active, tun.LeverAngle), 0, 0),
		ArrowRight: math.V3(0, 0, pick(s.ArrowRightPressed, tun.PressDepth)),
		ArrowLeft:  math.V3(0, 0, pick(s.ArrowLeftPressed, tun.PressDepth)),

		Artefact:    math.V3(0, 0, artefactWobble.At(t)),
		Gauge1:      math.V3(0, 0, gauge1Needle.At(t)+live.Noise*tun.GaugeJitter),
		Gauge2:      math.V3(0, 0, gauge2Needle.At(t)),
		HologramPos: math.V3(hologramX.At(t), hologramY.At(t), hologramDepth),
		HologramRot: math.V3(hologramPitch, 0, hologramRoll.At(t)),
		CameraPos:   math.V3(swayX.At(t), swayY.At(t), cameraDepth),
		CameraLook:  cameraLook,
	}

	// The ribbon waits for the cover's live rotation, so it lags the cover
	// instead of opening with it.
	if s.Book2Open && math32.Abs(live.CoverRotation) > tun.RibbonGate {
		ts.Ribbon = math.V3(0, 0, tun.RibbonOpenAngle)
	}

	if s.GlobeSpinning {
		ts.GlobeSpin = c.DT() * tun.GlobeSpeed
	}

	if s.ModalVisible {
		ts.ScreenIntensity = tun.ScreenOnIntensity
		ts.ScreenColor = tun.ScreenOn
	} else {
		ts.ScreenColor = tun.ScreenOff
	}

	ts.Lights = make([]LightLevel, len(tun.Lights))
	for i, l := range tun.Lights {
		level := wave.Pulse(t, l.Speed, l.Phase)
		ts.Lights[i] = LightLevel{
			Node:      l.Node,
			Color:     l.Color,
			Emissive:  level * tun.LightEmissiveScale,
			Intensity: level * tun.LightIntensityScale,
		}
	}
	return ts
}

func pick(on bool, v float32) float32 {
	if on {
		return v
	}
	return 0
}
