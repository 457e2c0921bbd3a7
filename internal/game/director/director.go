// Package director sequences the fade between the door and cabin scenes and
// exposes the flags the overlay renders.
package director

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/content"
	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/game/cabin"
	"github.com/Faultbox/porta-cabine/internal/game/door"
	"github.com/Faultbox/porta-cabine/internal/game/states"
	"github.com/Faultbox/porta-cabine/internal/interact"
	"github.com/Faultbox/porta-cabine/internal/logger"
	"github.com/Faultbox/porta-cabine/internal/scheduler"
)

// Phase is the top-level presentation stage.
type Phase int

const (
	Active Phase = iota
	FadingOut
	Switched
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case FadingOut:
		return "fadingOut"
	case Switched:
		return "switched"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	timerText   = "text"
	timerSwap   = "swap"
	timerReveal = "reveal"
)

// Overlay is the plain state the overlay collaborator renders.
type Overlay struct {
	Scene         string
	Fade          bool
	FadeTarget    float32 // 1 while fading to black
	TextVisible   bool
	Message       string
	PointerCursor bool

	// Zero until the cabin is mounted.
	Cabin cabin.View
}

// Director owns the scene manager and the fade timers.
type Director struct {
	cfg     config.TransitionConfig
	manager *states.Manager
	door    *door.Scene
	cabin   *cabin.Scene
	queue   *scheduler.Queue

	phase Phase
	fade  bool
	text  bool

	log *zap.Logger
}

// New creates a director with the door scene pending mount. The cabin is
// built up front so content reloads reach it before it is shown.
func New(cfg *config.Config, cat *content.Catalog) *Director {
	d := &Director{
		cfg:     cfg.Transition,
		manager: states.NewManager(),
		door:    door.NewScene(cfg.Door, scenegraph.Door()),
		cabin:   cabin.NewScene(cfg.Cabin, scenegraph.Cabin(), cat),
		queue:   scheduler.New(),
		log:     logger.Named("director"),
	}
	d.queue.OnFire(func(name string, at time.Duration) {
		d.log.Debug("timer fired", zap.String("timer", name), zap.Duration("at", at))
	})
	d.door.OnComplete(func() { d.SetFade(true) })
	d.manager.Change(d.door)
	return d
}

// Phase returns the current stage.
func (d *Director) Phase() Phase {
	return d.phase
}

// Door returns the door scene.
func (d *Director) Door() *door.Scene {
	return d.door
}

// Cabin returns the cabin scene.
func (d *Director) Cabin() *cabin.Scene {
	return d.cabin
}

// Current returns the mounted scene, or nil before the first Update and after
// Close.
func (d *Director) Current() states.Scene {
	return d.manager.Current()
}

// Targets lists the interactive targets of the mounted scene.
func (d *Director) Targets() []string {
	if cur := d.manager.Current(); cur != nil {
		return cur.Targets()
	}
	return nil
}

// SetFade sets the fade flag. Only the rising edge arms the sequence, so a
// repeated signal cannot double-arm the timers.
func (d *Director) SetFade(on bool) {
	if on == d.fade {
		return
	}
	if on && d.phase != Active {
		d.log.Warn("fade raised outside the door scene", zap.Stringer("phase", d.phase))
		return
	}
	d.fade = on
	if !on {
		return
	}
	d.setPhase(FadingOut)
	d.queue.After(d.cfg.TextDelay, timerText, func() {
		d.text = true
	})
	d.queue.After(d.cfg.SwapDelay, timerSwap, d.swap)
}

func (d *Director) swap() {
	d.text = false
	d.manager.Change(d.cabin)
	d.setPhase(Switched)
	// The reveal waits one short beat so the cabin mounts behind the black.
	d.queue.After(d.cfg.RevealDelay, timerReveal, func() {
		d.fade = false
		d.setPhase(Revealed)
	})
}

// Advance fires the fade timers and the mounted scene's timers due at now.
// Loops call it before delivering a frame's input.
func (d *Director) Advance(now time.Duration) {
	d.queue.Advance(now)
	d.manager.Advance(now)
}

// HandleInput forwards a pointer event to the mounted scene.
func (d *Director) HandleInput(ev interact.Event) error {
	return d.manager.HandleInput(ev)
}

// Update fires due timers, applies any pending scene change, then updates
// the mounted scene.
func (d *Director) Update(c clock.Clock) error {
	d.Advance(c.Elapsed)
	return d.manager.Update(c)
}

// SetCatalog swaps the cabin panel content.
func (d *Director) SetCatalog(cat *content.Catalog) {
	d.cabin.SetCatalog(cat)
}

// Overlay returns the flags for this frame.
func (d *Director) Overlay() Overlay {
	o := Overlay{
		Fade:        d.fade,
		TextVisible: d.text,
		Message:     d.cfg.Message,
	}
	if d.fade {
		o.FadeTarget = 1
	}
	cur := d.manager.Current()
	if cur == nil {
		return o
	}
	o.Scene = cur.Name()
	if o.Scene == d.cabin.Name() {
		o.Cabin = d.cabin.View()
		o.PointerCursor = o.Cabin.PointerCursor
	} else {
		o.PointerCursor = d.door.PointerCursor()
	}
	return o
}

// Pending reports whether the named fade timer is armed.
func (d *Director) Pending(timer string) bool {
	return d.queue.Pending(timer)
}

// Close drops every pending timer and unmounts the active scene.
func (d *Director) Close() error {
	d.queue.Clear()
	return d.manager.Close()
}

func (d *Director) setPhase(p Phase) {
	d.log.Info("transition phase", zap.Stringer("from", d.phase), zap.Stringer("to", p))
	d.phase = p
}
