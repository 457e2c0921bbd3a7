// Package config handles showcase configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Config holds all showcase settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Door       DoorConfig       `yaml:"door"`
	Cabin      CabinConfig      `yaml:"cabin"`
	Transition TransitionConfig `yaml:"transition"`
	Content    ContentConfig    `yaml:"content"`
	Run        RunConfig        `yaml:"run"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings for the SDL viewer.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// Pose is a camera target: where to stand, where to look, and how fast to
// get there.
type Pose struct {
	Position math.Vec3 `yaml:"position"`
	LookAt   math.Vec3 `yaml:"look_at"`
	Smooth   float32   `yaml:"smooth"` // seconds
}

// DoorConfig tunes the door choreography.
type DoorConfig struct {
	HoverAngle float32 `yaml:"hover_angle"` // radians, Y axis
	OpenAngle  float32 `yaml:"open_angle"`
	Smooth     float32 `yaml:"smooth"`

	Rest   Pose `yaml:"rest"`
	Recoil Pose `yaml:"recoil"`
	Enter  Pose `yaml:"enter"`

	// Sampled against the damped camera z, not its target.
	RecoilThreshold   float32 `yaml:"recoil_threshold"`
	CompleteThreshold float32 `yaml:"complete_threshold"`
}

// BlinkConfig describes one blinking indicator light.
type BlinkConfig struct {
	Node  string  `yaml:"node"`
	Color string  `yaml:"color"`
	Speed float32 `yaml:"speed"`
	Phase float32 `yaml:"phase"`
}

// CabinConfig tunes the cabin fixtures.
type CabinConfig struct {
	BookOpenAngle float32 `yaml:"book_open_angle"`
	BookSmooth    float32 `yaml:"book_smooth"`

	CoverOpenAngle   float32 `yaml:"cover_open_angle"`
	CoverSmooth      float32 `yaml:"cover_smooth"`
	RibbonOpenAngle  float32 `yaml:"ribbon_open_angle"`
	RibbonSmooth     float32 `yaml:"ribbon_smooth"`
	RibbonTailAngle  float32 `yaml:"ribbon_tail_angle"`
	RibbonTailSmooth float32 `yaml:"ribbon_tail_smooth"`
	RibbonGate       float32 `yaml:"ribbon_gate"` // |cover rotation| before the ribbon may follow

	LeverAngle  float32 `yaml:"lever_angle"`
	LeverSmooth float32 `yaml:"lever_smooth"`

	GlobeSpeed float32 `yaml:"globe_speed"` // radians per second

	PressDepth    float32       `yaml:"press_depth"`
	PressSmooth   float32       `yaml:"press_smooth"`
	PressDuration time.Duration `yaml:"press_duration"`

	ModalDelay        time.Duration `yaml:"modal_delay"`
	ScreenOnColor     string        `yaml:"screen_on_color"`
	ScreenOffColor    string        `yaml:"screen_off_color"`
	ScreenOnIntensity float32       `yaml:"screen_on_intensity"`
	ScreenSmooth      float32       `yaml:"screen_smooth"`

	GaugeJitter float32 `yaml:"gauge_jitter"`

	LightEmissiveScale  float32       `yaml:"light_emissive_scale"`
	LightIntensityScale float32       `yaml:"light_intensity_scale"`
	Lights              []BlinkConfig `yaml:"lights"`
}

// TransitionConfig holds the fade/reveal timings.
type TransitionConfig struct {
	TextDelay    time.Duration `yaml:"text_delay"`
	SwapDelay    time.Duration `yaml:"swap_delay"`
	RevealDelay  time.Duration `yaml:"reveal_delay"`
	FadeDuration time.Duration `yaml:"fade_duration"`
	Message      string        `yaml:"message"`
}

// ContentConfig locates the panel content catalog.
type ContentConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// ScriptStep is one synthetic pointer event for the headless runner.
type ScriptStep struct {
	At     time.Duration `yaml:"at"`
	Kind   string        `yaml:"kind"` // click | enter | exit
	Target string        `yaml:"target"`
}

// RunConfig controls how the showcase is driven.
type RunConfig struct {
	Headless bool          `yaml:"headless"`
	Duration time.Duration `yaml:"duration"`
	FPS      int           `yaml:"fps"`
	Script   []ScriptStep  `yaml:"script"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock choreography.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Porta / Cabine",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Door: DoorConfig{
			HoverAngle: -0.5,
			OpenAngle:  -1.6,
			Smooth:     0.25,
			Rest: Pose{
				Position: math.V3(0, 5, 50),
				LookAt:   math.V3(0, 5, 0),
				Smooth:   0.6,
			},
			Recoil: Pose{
				Position: math.V3(0, 5, 60),
				LookAt:   math.V3(0, 5, 0),
				Smooth:   0.8,
			},
			Enter: Pose{
				Position: math.V3(0, 6, 0),
				LookAt:   math.V3(0, 6, -20),
				Smooth:   1.6,
			},
			RecoilThreshold:   52,
			CompleteThreshold: 1.5,
		},
		Cabin: CabinConfig{
			BookOpenAngle:       3,
			BookSmooth:          0.25,
			CoverOpenAngle:      2.2,
			CoverSmooth:         0.25,
			RibbonOpenAngle:     -1.6,
			RibbonSmooth:        0.2,
			RibbonTailAngle:     -1.2,
			RibbonTailSmooth:    0.3,
			RibbonGate:          0.4,
			LeverAngle:          0.4,
			LeverSmooth:         0.2,
			GlobeSpeed:          2.0,
			PressDepth:          -0.15,
			PressSmooth:         0.1,
			PressDuration:       150 * time.Millisecond,
			ModalDelay:          3 * time.Second,
			ScreenOnColor:       "#00aaff",
			ScreenOffColor:      "#000510",
			ScreenOnIntensity:   0.8,
			ScreenSmooth:        0.5,
			GaugeJitter:         0.02,
			LightEmissiveScale:  5,
			LightIntensityScale: 4,
			Lights: []BlinkConfig{
				{Node: "luz", Color: "#ff0000", Speed: 2.5, Phase: 0},
				{Node: "luz001", Color: "#0000ff", Speed: 5, Phase: 15},
				{Node: "luz002", Color: "#00ff00", Speed: 3, Phase: 5},
				{Node: "luz003", Color: "#00ff00", Speed: 4, Phase: 2},
				{Node: "luz004", Color: "#00ff00", Speed: 5, Phase: 0},
				{Node: "luz005", Color: "#00ff00", Speed: 7, Phase: 2},
				{Node: "luz006", Color: "#ffff00", Speed: 3, Phase: 5},
				{Node: "luz007", Color: "#ffff00", Speed: 4, Phase: 1},
				{Node: "luz008", Color: "#ff0000", Speed: 2, Phase: 10},
			},
		},
		Transition: TransitionConfig{
			TextDelay:    1500 * time.Millisecond,
			SwapDelay:    4500 * time.Millisecond,
			RevealDelay:  100 * time.Millisecond,
			FadeDuration: 1500 * time.Millisecond,
			Message:      "Mensagem Humilde",
		},
		Content: ContentConfig{
			Path: "content.yaml",
		},
		Run: RunConfig{
			Duration: 18 * time.Second,
			FPS:      60,
			Script: []ScriptStep{
				{At: 500 * time.Millisecond, Kind: "enter", Target: "porta"},
				{At: 900 * time.Millisecond, Kind: "click", Target: "porta"},
				{At: 13 * time.Second, Kind: "click", Target: "Empty_Livro1_Pivo"},
				{At: 13500 * time.Millisecond, Kind: "click", Target: "Empty_livro_2_Pivo"},
				{At: 14 * time.Second, Kind: "click", Target: "Empty_alavanca_1"},
				{At: 14500 * time.Millisecond, Kind: "click", Target: "Empty_globo_esfera_Pivo"},
				{At: 15500 * time.Millisecond, Kind: "click", Target: "seta_direita"},
				{At: 16 * time.Second, Kind: "click", Target: "seta_direita"},
				{At: 16500 * time.Millisecond, Kind: "click", Target: "seta_esquerda"},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
