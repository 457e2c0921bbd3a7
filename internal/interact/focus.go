package interact

// Focus is a keyboard focus ring over a scene's targets. It stands in for
// pointer picking: moving focus produces the hover exit/enter pair a pointer
// would, and activating it produces a click.
type Focus struct {
	targets []string
	idx     int
}

// NewFocus creates a ring with nothing focused.
func NewFocus(targets []string) *Focus {
	f := &Focus{idx: -1}
	f.targets = append(f.targets, targets...)
	return f
}

// Current returns the focused target.
func (f *Focus) Current() (string, bool) {
	if f.idx < 0 || f.idx >= len(f.targets) {
		return "", false
	}
	return f.targets[f.idx], true
}

// Reset replaces the ring. The old focus, if any, gets a hover exit.
func (f *Focus) Reset(targets []string) []Event {
	var out []Event
	if cur, ok := f.Current(); ok {
		out = append(out, Event{Kind: HoverExit, Target: cur})
	}
	f.targets = append(f.targets[:0], targets...)
	f.idx = -1
	return out
}

// Next moves focus forward, wrapping.
func (f *Focus) Next() []Event {
	return f.move(1)
}

// Prev moves focus backward, wrapping.
func (f *Focus) Prev() []Event {
	return f.move(-1)
}

// Activate clicks the focused target.
func (f *Focus) Activate() (Event, bool) {
	cur, ok := f.Current()
	if !ok {
		return Event{}, false
	}
	return Event{Kind: Click, Target: cur}, true
}

func (f *Focus) move(step int) []Event {
	n := len(f.targets)
	if n == 0 {
		return nil
	}
	var out []Event
	if cur, ok := f.Current(); ok {
		out = append(out, Event{Kind: HoverExit, Target: cur})
	}
	switch {
	case f.idx < 0 && step < 0:
		f.idx = n - 1
	case f.idx < 0:
		f.idx = 0
	default:
		f.idx = (f.idx + step + n) % n
	}
	return append(out, Event{Kind: HoverEnter, Target: f.targets[f.idx]})
}
