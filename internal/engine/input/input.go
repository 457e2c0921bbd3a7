// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/game/cabin"
	"github.com/Faultbox/porta-cabine/internal/interact"
)

// EventType classifies a polled event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// ButtonLeft is the primary mouse button.
const ButtonLeft = sdl.BUTTON_LEFT

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Mod    sdl.Keymod
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them. It returns true when the window
// was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			ev := Event{
				Key:    e.Keysym.Scancode,
				Mod:    sdl.Keymod(e.Keysym.Mod),
				Repeat: e.Repeat != 0,
			}
			switch e.Type {
			case sdl.KEYDOWN:
				ev.Type = EventKeyDown
			case sdl.KEYUP:
				ev.Type = EventKeyUp
			default:
				continue
			}
			i.events = append(i.events, ev)

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			ev := Event{MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = EventMouseDown
			} else {
				ev.Type = EventMouseUp
			}
			i.events = append(i.events, ev)
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translate maps a key press onto pointer events for the focused target.
// Tab and Shift+Tab cycle focus, Space and Return click the focused target,
// the arrow keys click the page arrows, and P clicks the panel link.
// quit is true for Escape.
func Translate(ev Event, focus *interact.Focus) (out []interact.Event, quit bool) {
	if ev.Type != EventKeyDown {
		return nil, false
	}
	switch ev.Key {
	case sdl.SCANCODE_ESCAPE:
		return nil, true
	case sdl.SCANCODE_TAB:
		if ev.Mod&sdl.KMOD_SHIFT != 0 {
			return focus.Prev(), false
		}
		return focus.Next(), false
	case sdl.SCANCODE_SPACE, sdl.SCANCODE_RETURN:
		if ev.Repeat {
			return nil, false
		}
		if click, ok := focus.Activate(); ok {
			return []interact.Event{click}, false
		}
	case sdl.SCANCODE_RIGHT:
		return []interact.Event{{Kind: interact.Click, Target: scenegraph.ArrowRightNode}}, false
	case sdl.SCANCODE_LEFT:
		return []interact.Event{{Kind: interact.Click, Target: scenegraph.ArrowLeftNode}}, false
	case sdl.SCANCODE_P:
		return []interact.Event{{Kind: interact.Click, Target: cabin.PanelButton}}, false
	}
	return nil, false
}
