package door

import (
	"github.com/Faultbox/porta-cabine/internal/anim"
	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/interact"
	"github.com/Faultbox/porta-cabine/pkg/math"
)

// Scene is the door scene.
type Scene struct {
	cfg     config.DoorConfig
	graph   *scenegraph.Graph
	machine *Machine
	router  *interact.Router
	door    *anim.Vec3Track
	camera  *anim.CameraRig
}

// NewScene creates the door scene over g.
func NewScene(cfg config.DoorConfig, g *scenegraph.Graph) *Scene {
	s := &Scene{
		cfg:     cfg,
		graph:   g,
		machine: NewMachine(cfg),
		router:  interact.NewRouter(),
		door:    anim.NewRotation(scenegraph.DoorNode),
		camera:  anim.NewCameraRig(cfg.Rest.LookAt),
	}
	s.router.Handle(scenegraph.DoorNode, interact.Handlers{
		Click:      func() { s.machine.Click() },
		HoverEnter: s.machine.HoverEnter,
		HoverExit:  s.machine.HoverExit,
	})
	return s
}

// Name implements states.Scene.
func (s *Scene) Name() string { return "door" }

// Graph implements states.Scene.
func (s *Scene) Graph() *scenegraph.Graph { return s.graph }

// Targets implements states.Scene.
func (s *Scene) Targets() []string { return s.router.Targets() }

// Machine exposes the door state machine.
func (s *Scene) Machine() *Machine { return s.machine }

// OnComplete forwards to the machine.
func (s *Scene) OnComplete(fn func()) { s.machine.OnComplete(fn) }

// PointerCursor reports whether the overlay should show a pointer cursor.
func (s *Scene) PointerCursor() bool { return s.machine.Hovered() }

// Enter implements states.Scene.
func (s *Scene) Enter(clock.Clock) error { return nil }

// Exit implements states.Scene. The door arms no timers.
func (s *Scene) Exit() error { return nil }

// HandleInput implements states.Scene.
func (s *Scene) HandleInput(ev interact.Event) error {
	s.router.Dispatch(ev)
	return nil
}

// Update damps the door and camera toward the phase targets, then samples
// the depth guards against the camera's new position.
func (s *Scene) Update(c clock.Clock) error {
	dt := c.DT()

	s.door.Damp(s.graph, math.V3(0, s.machine.DoorAngle(), 0), s.cfg.Smooth, dt)

	pose := s.machine.CameraPose()
	if s.camera.Damp(s.graph, pose.Position, pose.LookAt, pose.Smooth, dt) {
		s.machine.Sample(s.camera.Position().Z)
	}
	return nil
}
