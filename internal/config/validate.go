package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"
)

var (
	// ErrInvalidColor is returned for a colour that is not a #rrggbb hex string.
	ErrInvalidColor = errors.New("invalid colour")
	// ErrInvalidSmoothTime is returned for a negative smoothing time.
	ErrInvalidSmoothTime = errors.New("smooth time must not be negative")
	// ErrInvalidThreshold is returned when the door depth guards are inverted.
	ErrInvalidThreshold = errors.New("complete threshold must be below recoil threshold")
)

// Validate reports every problem found in cfg, combined with multierr.
func (c *Config) Validate() error {
	var err error

	smooth := map[string]float32{
		"door.smooth":              c.Door.Smooth,
		"door.rest.smooth":         c.Door.Rest.Smooth,
		"door.recoil.smooth":       c.Door.Recoil.Smooth,
		"door.enter.smooth":        c.Door.Enter.Smooth,
		"cabin.book_smooth":        c.Cabin.BookSmooth,
		"cabin.cover_smooth":       c.Cabin.CoverSmooth,
		"cabin.ribbon_smooth":      c.Cabin.RibbonSmooth,
		"cabin.ribbon_tail_smooth": c.Cabin.RibbonTailSmooth,
		"cabin.lever_smooth":       c.Cabin.LeverSmooth,
		"cabin.press_smooth":       c.Cabin.PressSmooth,
		"cabin.screen_smooth":      c.Cabin.ScreenSmooth,
	}
	for _, key := range sortedKeys(smooth) {
		if smooth[key] < 0 {
			err = multierr.Append(err, fmt.Errorf("%s=%v: %w", key, smooth[key], ErrInvalidSmoothTime))
		}
	}

	if c.Door.CompleteThreshold >= c.Door.RecoilThreshold {
		err = multierr.Append(err, fmt.Errorf("door: %v >= %v: %w",
			c.Door.CompleteThreshold, c.Door.RecoilThreshold, ErrInvalidThreshold))
	}

	err = multierr.Append(err, checkColor("cabin.screen_on_color", c.Cabin.ScreenOnColor))
	err = multierr.Append(err, checkColor("cabin.screen_off_color", c.Cabin.ScreenOffColor))
	for i, l := range c.Cabin.Lights {
		if l.Node == "" {
			err = multierr.Append(err, fmt.Errorf("cabin.lights[%d]: node name is empty", i))
		}
		err = multierr.Append(err, checkColor(fmt.Sprintf("cabin.lights[%d].color", i), l.Color))
	}

	for _, d := range []struct {
		key string
		v   int64
	}{
		{"transition.text_delay", int64(c.Transition.TextDelay)},
		{"transition.swap_delay", int64(c.Transition.SwapDelay)},
		{"transition.reveal_delay", int64(c.Transition.RevealDelay)},
		{"cabin.press_duration", int64(c.Cabin.PressDuration)},
		{"cabin.modal_delay", int64(c.Cabin.ModalDelay)},
	} {
		if d.v < 0 {
			err = multierr.Append(err, fmt.Errorf("%s: duration must not be negative", d.key))
		}
	}

	if c.Run.Headless && c.Run.FPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("run.fps must be positive, got %d", c.Run.FPS))
	}
	for i, s := range c.Run.Script {
		switch s.Kind {
		case "click", "enter", "exit":
		default:
			err = multierr.Append(err, fmt.Errorf("run.script[%d]: unknown kind %q", i, s.Kind))
		}
	}

	return err
}

// ParseColor parses a #rrggbb string.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return c, nil
}

// ColorOrBlack parses a colour already checked by Validate, falling back to black.
func ColorOrBlack(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func checkColor(key, s string) error {
	if _, err := ParseColor(s); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func sortedKeys(m map[string]float32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
