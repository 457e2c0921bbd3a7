// Package script drives the presentation without a window: a virtual clock
// stepped at a fixed rate and a timed list of synthetic pointer events.
package script

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/content"
	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/game/director"
	"github.com/Faultbox/porta-cabine/internal/interact"
	"github.com/Faultbox/porta-cabine/internal/logger"
)

// Step is one scheduled pointer event.
type Step struct {
	At    time.Duration
	Event interact.Event
}

// ParseKind maps a config kind name to an event kind.
func ParseKind(s string) (interact.Kind, error) {
	switch s {
	case "click":
		return interact.Click, nil
	case "enter":
		return interact.HoverEnter, nil
	case "exit":
		return interact.HoverExit, nil
	default:
		return 0, fmt.Errorf("unknown event kind %q", s)
	}
}

// FromConfig converts configured steps.
func FromConfig(steps []config.ScriptStep) ([]Step, error) {
	out := make([]Step, 0, len(steps))
	for i, s := range steps {
		kind, err := ParseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, Step{At: s.At, Event: interact.Event{Kind: kind, Target: s.Target}})
	}
	return out, nil
}

// Player releases steps as virtual time passes them.
type Player struct {
	steps []Step
	next  int
}

// NewPlayer sorts steps by time; steps at the same time keep their order.
func NewPlayer(steps []Step) *Player {
	p := &Player{steps: append([]Step(nil), steps...)}
	sort.SliceStable(p.steps, func(i, j int) bool { return p.steps[i].At < p.steps[j].At })
	return p
}

// Due returns the events with At <= now not yet released.
func (p *Player) Due(now time.Duration) []interact.Event {
	var out []interact.Event
	for p.next < len(p.steps) && p.steps[p.next].At <= now {
		out = append(out, p.steps[p.next].Event)
		p.next++
	}
	return out
}

// Done reports whether every step was released.
func (p *Player) Done() bool {
	return p.next >= len(p.steps)
}

// Options configures Run.
type Options struct {
	Duration time.Duration
	FPS      int
	Steps    []Step
	Reload   <-chan *content.Catalog
}

// Run steps d at a fixed rate for the given duration, feeding scripted events
// before each frame, and returns the final overlay. It stops early with the
// context error when ctx is cancelled.
func Run(ctx context.Context, d *director.Director, opts Options) (director.Overlay, error) {
	if opts.FPS <= 0 {
		return director.Overlay{}, fmt.Errorf("fps must be positive, got %d", opts.FPS)
	}
	log := logger.Named("headless")
	frame := time.Second / time.Duration(opts.FPS)
	clk := clock.NewManual()
	player := NewPlayer(opts.Steps)

	if err := d.Update(clk.Tick()); err != nil {
		return d.Overlay(), err
	}

	last := d.Overlay()
	finished := false
	for clk.Now() < opts.Duration {
		select {
		case <-ctx.Done():
			return d.Overlay(), ctx.Err()
		case cat, ok := <-opts.Reload:
			if ok && cat != nil {
				d.SetCatalog(cat)
			}
		default:
		}

		c := clk.Step(frame)
		d.Advance(c.Elapsed)
		for _, ev := range player.Due(c.Elapsed) {
			log.Debug("scripted event", zap.Stringer("kind", ev.Kind), zap.String("target", ev.Target))
			if err := d.HandleInput(ev); err != nil {
				return d.Overlay(), err
			}
		}
		if !finished && player.Done() {
			finished = true
			log.Info("script finished", zap.Duration("at", c.Elapsed), zap.Stringer("phase", d.Phase()))
		}
		if err := d.Update(c); err != nil {
			return d.Overlay(), err
		}

		o := d.Overlay()
		logChanges(log, clk.Now(), last, o)
		last = o
	}
	return last, nil
}

func logChanges(log *zap.Logger, at time.Duration, prev, cur director.Overlay) {
	if prev.Scene != cur.Scene {
		log.Info("scene", zap.Duration("at", at), zap.String("scene", cur.Scene))
	}
	if prev.Fade != cur.Fade {
		log.Info("fade", zap.Duration("at", at), zap.Bool("on", cur.Fade))
	}
	if prev.TextVisible != cur.TextVisible {
		log.Info("text", zap.Duration("at", at), zap.Bool("visible", cur.TextVisible), zap.String("message", cur.Message))
	}
	if prev.Cabin.ModalVisible != cur.Cabin.ModalVisible {
		log.Info("modal", zap.Duration("at", at), zap.Bool("visible", cur.Cabin.ModalVisible))
	}
	if prev.Cabin.Page.Index != cur.Cabin.Page.Index {
		log.Info("page", zap.Duration("at", at), zap.Int("page", cur.Cabin.Page.Index), zap.String("title", cur.Cabin.Page.Title))
	}
}
