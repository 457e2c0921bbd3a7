// Package door implements the door scene: a hover-aware door and the camera
// choreography that carries the visitor through it.
package door

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/logger"
)

// Phase is the door sequence stage.
type Phase int

const (
	Idle Phase = iota
	Recoiling
	Entering
	Complete
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Recoiling:
		return "recoiling"
	case Entering:
		return "entering"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Machine is the door state machine. Click and hover come from pointer
// events; the depth guards are sampled once per frame against the damped
// camera depth.
type Machine struct {
	cfg        config.DoorConfig
	phase      Phase
	hovered    bool
	onComplete func()
	log        *zap.Logger
}

// NewMachine creates a machine in Idle.
func NewMachine(cfg config.DoorConfig) *Machine {
	return &Machine{cfg: cfg, log: logger.Named("door")}
}

// OnComplete sets the callback run once when the camera crosses the
// threshold.
func (m *Machine) OnComplete(fn func()) {
	m.onComplete = fn
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Hovered reports whether the pointer is over the door while it can still be
// clicked.
func (m *Machine) Hovered() bool {
	return m.hovered && m.phase == Idle
}

// Click starts the sequence. Clicks outside Idle are ignored; it reports
// whether the click was accepted.
func (m *Machine) Click() bool {
	if m.phase != Idle {
		m.log.Debug("click ignored", zap.Stringer("phase", m.phase))
		return false
	}
	m.setPhase(Recoiling)
	return true
}

// HoverEnter marks the door as hovered. Ignored outside Idle.
func (m *Machine) HoverEnter() {
	if m.phase != Idle {
		return
	}
	m.hovered = true
}

// HoverExit clears the hover in any phase so no stale hover survives.
func (m *Machine) HoverExit() {
	m.hovered = false
}

// Sample evaluates the depth guard for the current phase against the
// camera's current depth and returns the resulting phase. At most one
// transition happens per call.
func (m *Machine) Sample(depth float32) Phase {
	switch m.phase {
	case Recoiling:
		if depth > m.cfg.RecoilThreshold {
			m.setPhase(Entering)
		}
	case Entering:
		if depth < m.cfg.CompleteThreshold {
			m.setPhase(Complete)
			if m.onComplete != nil {
				m.onComplete()
			}
		}
	}
	return m.phase
}

// DoorAngle returns the target door rotation about Y.
func (m *Machine) DoorAngle() float32 {
	switch {
	case m.phase != Idle:
		return m.cfg.OpenAngle
	case m.hovered:
		return m.cfg.HoverAngle
	default:
		return 0
	}
}

// CameraPose returns the camera target for the current phase.
func (m *Machine) CameraPose() config.Pose {
	switch m.phase {
	case Recoiling:
		return m.cfg.Recoil
	case Entering, Complete:
		return m.cfg.Enter
	default:
		return m.cfg.Rest
	}
}

func (m *Machine) setPhase(p Phase) {
	m.log.Info("door phase", zap.Stringer("from", m.phase), zap.Stringer("to", p))
	m.phase = p
}
