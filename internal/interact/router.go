// Package interact routes pointer events from the picking collaborator to
// the state mutations registered for each named target.
//
// The router performs no hit-testing and owns no state; scenes register one
// Handlers entry per interactive node and all mutation stays in the scene.
package interact

import (
	"fmt"
	"sort"
)

// Kind is the pointer event type.
type Kind int

const (
	Click Kind = iota
	HoverEnter
	HoverExit
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case HoverEnter:
		return "hoverEnter"
	case HoverExit:
		return "hoverExit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one pointer event addressed to a scene-graph node.
type Event struct {
	Kind   Kind
	Target string
}

// Handlers are the mutations attached to one target. Nil entries ignore the
// corresponding event.
type Handlers struct {
	Click      func()
	HoverEnter func()
	HoverExit  func()
}

// Router is a targetID -> Handlers table.
type Router struct {
	table map[string]Handlers
}

// NewRouter creates an empty routing table.
func NewRouter() *Router {
	return &Router{table: make(map[string]Handlers)}
}

// Handle registers (or replaces) the handlers for target.
func (r *Router) Handle(target string, h Handlers) {
	r.table[target] = h
}

// Dispatch runs the handler for ev. It reports whether a handler ran.
func (r *Router) Dispatch(ev Event) bool {
	h, ok := r.table[ev.Target]
	if !ok {
		return false
	}
	var fn func()
	switch ev.Kind {
	case Click:
		fn = h.Click
	case HoverEnter:
		fn = h.HoverEnter
	case HoverExit:
		fn = h.HoverExit
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Targets lists registered target names in sorted order.
func (r *Router) Targets() []string {
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
