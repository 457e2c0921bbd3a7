package cabin

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/content"
	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/interact"
	"github.com/Faultbox/porta-cabine/internal/logger"
	"github.com/Faultbox/porta-cabine/internal/scheduler"
)

// PanelButton is the overlay target of the panel's action link.
const PanelButton = "panel_button"

// Timer names.
const (
	timerModal      = "modal"
	timerArrowRight = "release:" + scenegraph.ArrowRightNode
	timerArrowLeft  = "release:" + scenegraph.ArrowLeftNode
)

// View is what the overlay collaborator reads from the cabin.
type View struct {
	ModalVisible  bool
	Page          content.Page
	ButtonHovered bool
	PointerCursor bool
}

// Scene is the cabin scene.
type Scene struct {
	tun     Tuning
	graph   *scenegraph.Graph
	catalog *content.Catalog

	toggles Toggles
	pager   *Pager
	queue   *scheduler.Queue
	router  *interact.Router
	anim    *Animator

	hovered       map[string]bool
	buttonHovered bool
	release       map[string]scheduler.ID

	noise    func() float32
	openLink func(url string)
	log      *zap.Logger
}

// NewScene creates the cabin scene over g showing cat. A nil catalog shows
// only the welcome page.
func NewScene(cfg config.CabinConfig, g *scenegraph.Graph, cat *content.Catalog) *Scene {
	if cat == nil {
		cat = content.Empty()
	}
	tun := NewTuning(cfg)
	s := &Scene{
		tun:     tun,
		graph:   g,
		catalog: cat,
		pager:   NewPager(cat.Total()),
		queue:   scheduler.New(),
		router:  interact.NewRouter(),
		anim:    NewAnimator(tun),
		hovered: make(map[string]bool),
		release: make(map[string]scheduler.ID),
		noise:   rand.Float32,
		log:     logger.Named("cabin"),
	}
	s.queue.OnFire(func(name string, at time.Duration) {
		s.log.Debug("timer fired", zap.String("timer", name), zap.Duration("at", at))
	})
	s.routes()
	return s
}

func (s *Scene) routes() {
	toggle := func(target string, flag *bool) {
		s.router.Handle(target, interact.Handlers{
			Click: func() {
				*flag = !*flag
				s.log.Debug("toggle", zap.String("target", target), zap.Bool("on", *flag))
			},
			HoverEnter: func() { s.hovered[target] = true },
			HoverExit:  func() { delete(s.hovered, target) },
		})
	}
	toggle(scenegraph.Book1Node, &s.toggles.Book1Open)
	toggle(scenegraph.Book2CoverNode, &s.toggles.Book2Open)
	toggle(scenegraph.Lever1Node, &s.toggles.Lever1Active)
	toggle(scenegraph.Lever2Node, &s.toggles.Lever2Active)
	toggle(scenegraph.GlobeNode, &s.toggles.GlobeSpinning)

	arrow := func(target, timer string, pressed *bool, turn func() int) {
		s.router.Handle(target, interact.Handlers{
			Click: func() {
				page := turn()
				*pressed = true
				if id, ok := s.release[timer]; ok {
					s.queue.Cancel(id)
				}
				s.release[timer] = s.queue.After(s.tun.PressDuration, timer, func() {
					*pressed = false
					delete(s.release, timer)
				})
				s.log.Debug("page", zap.Int("page", page), zap.Int("total", s.pager.Total()))
			},
			HoverEnter: func() { s.hovered[target] = true },
			HoverExit:  func() { delete(s.hovered, target) },
		})
	}
	arrow(scenegraph.ArrowRightNode, timerArrowRight, &s.toggles.ArrowRightPressed, s.pager.Next)
	arrow(scenegraph.ArrowLeftNode, timerArrowLeft, &s.toggles.ArrowLeftPressed, s.pager.Prev)

	s.router.Handle(PanelButton, interact.Handlers{
		Click: func() {
			page, _ := s.catalog.Page(s.pager.Page())
			if page.Link == "" || !s.toggles.ModalVisible {
				return
			}
			s.log.Info("panel link", zap.String("url", page.Link))
			if s.openLink != nil {
				s.openLink(page.Link)
			}
		},
		HoverEnter: func() { s.buttonHovered = true },
		HoverExit:  func() { s.buttonHovered = false },
	})
}

// SetNoise replaces the gauge jitter source. The function returns values in
// [0, 1); nil disables jitter.
func (s *Scene) SetNoise(fn func() float32) {
	s.noise = fn
}

// OnOpenLink sets the callback for panel link clicks.
func (s *Scene) OnOpenLink(fn func(url string)) {
	s.openLink = fn
}

// SetCatalog swaps the panel content. A page beyond the new range resets to
// the welcome page.
func (s *Scene) SetCatalog(cat *content.Catalog) {
	if cat == nil {
		cat = content.Empty()
	}
	s.catalog = cat
	if s.pager.SetTotal(cat.Total()) {
		s.log.Info("page out of range after reload, back to welcome", zap.Int("total", cat.Total()))
	}
}

// Name implements states.Scene.
func (s *Scene) Name() string { return "cabin" }

// Graph implements states.Scene.
func (s *Scene) Graph() *scenegraph.Graph { return s.graph }

// Targets implements states.Scene.
func (s *Scene) Targets() []string { return s.router.Targets() }

// Enter implements states.Scene. It arms the one-shot modal timer.
func (s *Scene) Enter(c clock.Clock) error {
	s.queue.Advance(c.Elapsed)
	s.toggles.ModalVisible = false
	s.queue.After(s.tun.ModalDelay, timerModal, func() {
		s.toggles.ModalVisible = true
	})
	s.log.Debug("timer armed", zap.String("timer", timerModal), zap.Duration("delay", s.tun.ModalDelay))
	return nil
}

// Exit implements states.Scene. Pending timers are dropped.
func (s *Scene) Exit() error {
	s.queue.Clear()
	for k := range s.release {
		delete(s.release, k)
	}
	return nil
}

// Advance implements states.Timed.
func (s *Scene) Advance(now time.Duration) {
	s.queue.Advance(now)
}

// HandleInput implements states.Scene.
func (s *Scene) HandleInput(ev interact.Event) error {
	s.router.Dispatch(ev)
	return nil
}

// Update fires due timers, then animates every attribute from one snapshot.
func (s *Scene) Update(c clock.Clock) error {
	s.queue.Advance(c.Elapsed)

	live := s.anim.Live()
	if s.noise != nil {
		live.Noise = s.noise()
	}
	ts := ComputeTargets(s.tun, s.Snapshot(), c, live)
	s.anim.Apply(s.graph, ts, c.DT())
	return nil
}

// Snapshot returns the flags and page read by the next frame.
func (s *Scene) Snapshot() Snapshot {
	return Snapshot{
		Toggles: s.toggles,
		Page:    s.pager.Page(),
		Total:   s.pager.Total(),
	}
}

// View returns the overlay state.
func (s *Scene) View() View {
	page, _ := s.catalog.Page(s.pager.Page())
	return View{
		ModalVisible:  s.toggles.ModalVisible,
		Page:          page,
		ButtonHovered: s.buttonHovered,
		PointerCursor: len(s.hovered) > 0,
	}
}

// Animator exposes the damp state, for the renderer and tests.
func (s *Scene) Animator() *Animator {
	return s.anim
}

// Pending reports whether the named timer is armed.
func (s *Scene) Pending(timer string) bool {
	return s.queue.Pending(timer)
}
