// Package game implements the windowed main loop.
package game

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/content"
	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/engine/input"
	"github.com/Faultbox/porta-cabine/internal/engine/overlay"
	"github.com/Faultbox/porta-cabine/internal/engine/picking"
	"github.com/Faultbox/porta-cabine/internal/engine/renderer"
	"github.com/Faultbox/porta-cabine/internal/engine/window"
	"github.com/Faultbox/porta-cabine/internal/game/director"
	"github.com/Faultbox/porta-cabine/internal/interact"
	"github.com/Faultbox/porta-cabine/internal/logger"
)

// Game is the windowed showcase.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	director *director.Director
	focus    *interact.Focus
	pointer  picking.Pointer
	fader    *overlay.Fader
	scene    string
	reload   <-chan *content.Catalog

	log *zap.Logger
}

// New opens the window and builds the director over cat.
func New(cfg *config.Config, cat *content.Catalog) (*Game, error) {
	g := &Game{
		cfg:   cfg,
		focus: interact.NewFocus(nil),
		fader: overlay.NewFader(cfg.Transition.FadeDuration),
		log:   logger.Named("game"),
	}
	g.log.Info("initializing showcase",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	g.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderer.
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.director = director.New(cfg, cat)
	g.director.Cabin().OnOpenLink(func(url string) {
		g.log.Info("open link", zap.String("url", url))
	})

	g.log.Info("showcase initialized")
	return g, nil
}

// WatchContent routes catalog reloads into the running cabin.
func (g *Game) WatchContent(ch <-chan *content.Catalog) {
	g.reload = ch
}

// Run drives the main loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true
	clk := clock.NewWall()

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting main loop")

	for g.running {
		c := clk.Tick()
		// Timers due this frame fire before input, so a click arms its
		// follow-ups from now.
		g.director.Advance(c.Elapsed)

		if g.input.Update() {
			g.running = false
			break
		}
		if err := g.handleEvents(); err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		select {
		case cat, ok := <-g.reload:
			if ok && cat != nil {
				g.director.SetCatalog(cat)
			}
		default:
		}

		if err := g.director.Update(c); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		g.syncFocus()

		g.render(c)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", c.Delta))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() error {
	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			g.renderer.Resize(ev.Width, ev.Height)
			continue
		case input.EventMouseMove:
			if err := g.dispatch(g.pointer.Move(g.pick(ev.MouseX, ev.MouseY))); err != nil {
				return err
			}
			continue
		case input.EventMouseDown:
			if ev.Button != input.ButtonLeft {
				continue
			}
			if click, ok := g.pointer.Click(); ok {
				if err := g.director.HandleInput(click); err != nil {
					return err
				}
			}
			continue
		}
		out, quit := input.Translate(ev, g.focus)
		if quit {
			g.running = false
			return nil
		}
		if err := g.dispatch(out); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) dispatch(events []interact.Event) error {
	for _, ev := range events {
		if err := g.director.HandleInput(ev); err != nil {
			return err
		}
	}
	return nil
}

// pick returns the target under pixel (x, y), or "" when nothing is hit.
func (g *Game) pick(x, y int) string {
	cur := g.director.Current()
	if cur == nil {
		return ""
	}
	w, h := g.window.Size()
	name, _ := picking.PickScreen(cur.Graph(), float32(x), float32(y), float32(w), float32(h))
	return name
}

// syncFocus points the focus ring at the targets of a newly mounted scene.
// The exit for the old scene's focused target is dropped; that scene is gone.
func (g *Game) syncFocus() {
	cur := g.director.Current()
	if cur == nil || cur.Name() == g.scene {
		return
	}
	g.scene = cur.Name()
	g.focus.Reset(g.director.Targets())
	g.pointer.Reset()
}

func (g *Game) render(c clock.Clock) {
	o := g.director.Overlay()

	var bg colorful.Color
	if cur := g.director.Current(); cur != nil {
		bg = overlay.Background(cur.Graph())
	}
	g.renderer.Begin(bg)
	g.renderer.DrawFade(colorful.Color{}, g.fader.Update(o.FadeTarget, c.DT()))
	g.renderer.End()

	g.window.SetTitle(overlay.Title(g.cfg.Window.Title, o.Message, o.Cabin.Page.Title, o.TextVisible))
	g.window.SetPointer(o.PointerCursor)
}

// Close cleans up resources.
func (g *Game) Close() {
	g.log.Info("closing showcase")

	if g.director != nil {
		if err := g.director.Close(); err != nil {
			g.log.Warn("director close", zap.Error(err))
		}
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
