package picking

import "github.com/Faultbox/porta-cabine/internal/interact"

// Pointer tracks which target is under the mouse and emits the hover
// transitions between picks.
type Pointer struct {
	hovered string
}

// Move records the latest pick. An empty target means nothing is hit.
func (p *Pointer) Move(target string) []interact.Event {
	if target == p.hovered {
		return nil
	}
	var out []interact.Event
	if p.hovered != "" {
		out = append(out, interact.Event{Kind: interact.HoverExit, Target: p.hovered})
	}
	if target != "" {
		out = append(out, interact.Event{Kind: interact.HoverEnter, Target: target})
	}
	p.hovered = target
	return out
}

// Click returns a click on the hovered target.
func (p *Pointer) Click() (interact.Event, bool) {
	if p.hovered == "" {
		return interact.Event{}, false
	}
	return interact.Event{Kind: interact.Click, Target: p.hovered}, true
}

// Reset forgets the hovered target without emitting an exit.
func (p *Pointer) Reset() {
	p.hovered = ""
}
