// Package states implements scene management.
package states

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/interact"
	"github.com/Faultbox/porta-cabine/internal/logger"
)

// Scene is one mounted scene (door, cabin).
type Scene interface {
	// Name identifies the scene in logs and overlay state.
	Name() string

	// Enter is called when the scene is mounted.
	Enter(c clock.Clock) error

	// Exit is called when the scene is unmounted. Every timer the scene
	// armed must be dropped here.
	Exit() error

	// Update is called every frame.
	Update(c clock.Clock) error

	// HandleInput processes pointer events addressed to scene targets.
	HandleInput(ev interact.Event) error

	// Targets lists the interactive target names.
	Targets() []string

	// Graph returns the handles the scene animates.
	Graph() *scenegraph.Graph
}

// Timed is implemented by scenes that run one-shot timers. Advance fires
// every timer due at now so input delivered afterwards counts from now.
type Timed interface {
	Advance(now time.Duration)
}

// Manager owns the active scene and applies changes between frames.
type Manager struct {
	current Scene
	next    Scene
}

// NewManager creates a new scene manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the active scene.
func (m *Manager) Current() Scene {
	return m.current
}

// Change schedules a scene change for the next Update.
func (m *Manager) Change(next Scene) {
	m.next = next
}

// Update processes a pending change and updates the active scene.
func (m *Manager) Update(c clock.Clock) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		logger.Info("scene mounted", zap.String("scene", m.current.Name()), zap.Duration("at", c.Elapsed))
		if err := m.current.Enter(c); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(c)
	}
	return nil
}

// Advance fires the active scene's due timers when it has any.
func (m *Manager) Advance(now time.Duration) {
	if t, ok := m.current.(Timed); ok {
		t.Advance(now)
	}
}

// HandleInput forwards ev to the active scene.
func (m *Manager) HandleInput(ev interact.Event) error {
	if m.current != nil {
		return m.current.HandleInput(ev)
	}
	return nil
}

// Close unmounts the active scene.
func (m *Manager) Close() error {
	m.next = nil
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
