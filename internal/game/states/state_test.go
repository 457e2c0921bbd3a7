package states

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/interact"
)

type fakeScene struct {
	name    string
	calls   []string
	exitErr error
	enterAt time.Duration
}

func (f *fakeScene) Name() string { return f.name }

func (f *fakeScene) Enter(c clock.Clock) error {
	f.calls = append(f.calls, "enter")
	f.enterAt = c.Elapsed
	return nil
}

func (f *fakeScene) Exit() error {
	f.calls = append(f.calls, "exit")
	return f.exitErr
}

func (f *fakeScene) Update(clock.Clock) error {
	f.calls = append(f.calls, "update")
	return nil
}

func (f *fakeScene) HandleInput(ev interact.Event) error {
	f.calls = append(f.calls, "input:"+ev.Target)
	return nil
}

func (f *fakeScene) Targets() []string { return nil }

func (f *fakeScene) Graph() *scenegraph.Graph { return nil }

func TestManagerDefersChange(t *testing.T) {
	m := NewManager()
	a := &fakeScene{name: "a"}
	m.Change(a)
	assert.Nil(t, m.Current())

	clk := clock.NewManual()
	require.NoError(t, m.Update(clk.Step(10*time.Millisecond)))
	assert.Same(t, a, m.Current())
	assert.Equal(t, []string{"enter", "update"}, a.calls)
	assert.Equal(t, 10*time.Millisecond, a.enterAt)
}

func TestManagerSwapsScenes(t *testing.T) {
	m := NewManager()
	a := &fakeScene{name: "a"}
	b := &fakeScene{name: "b"}
	clk := clock.NewManual()

	m.Change(a)
	require.NoError(t, m.Update(clk.Tick()))
	m.Change(b)
	require.NoError(t, m.Update(clk.Tick()))

	assert.Equal(t, []string{"enter", "update", "exit"}, a.calls)
	assert.Equal(t, []string{"enter", "update"}, b.calls)

	require.NoError(t, m.HandleInput(interact.Event{Kind: interact.Click, Target: "x"}))
	assert.Equal(t, "input:x", b.calls[len(b.calls)-1])
}

func TestManagerExitError(t *testing.T) {
	m := NewManager()
	boom := errors.New("boom")
	a := &fakeScene{name: "a", exitErr: boom}
	clk := clock.NewManual()

	m.Change(a)
	require.NoError(t, m.Update(clk.Tick()))
	m.Change(&fakeScene{name: "b"})
	assert.ErrorIs(t, m.Update(clk.Tick()), boom)
}

type timedScene struct {
	fakeScene
	advanced []time.Duration
}

func (s *timedScene) Advance(now time.Duration) {
	s.advanced = append(s.advanced, now)
}

func TestManagerAdvance(t *testing.T) {
	m := NewManager()
	m.Advance(time.Second)

	plain := &fakeScene{name: "plain"}
	m.Change(plain)
	require.NoError(t, m.Update(clock.Clock{}))
	m.Advance(time.Second)
	assert.Equal(t, []string{"enter", "update"}, plain.calls)

	timed := &timedScene{fakeScene: fakeScene{name: "timed"}}
	m.Change(timed)
	require.NoError(t, m.Update(clock.Clock{}))
	m.Advance(2 * time.Second)
	assert.Equal(t, []time.Duration{2 * time.Second}, timed.advanced)
}

func TestManagerClose(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.Close())
	assert.NoError(t, m.HandleInput(interact.Event{}))
	assert.NoError(t, m.Update(clock.Clock{}))

	a := &fakeScene{name: "a"}
	m.Change(a)
	require.NoError(t, m.Update(clock.Clock{}))
	require.NoError(t, m.Close())
	assert.Nil(t, m.Current())
	assert.Equal(t, "exit", a.calls[len(a.calls)-1])
}
