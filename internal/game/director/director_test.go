package director

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/porta-cabine/internal/config"
	"github.com/Faultbox/porta-cabine/internal/content"
	"github.com/Faultbox/porta-cabine/internal/engine/clock"
	"github.com/Faultbox/porta-cabine/internal/engine/scenegraph"
	"github.com/Faultbox/porta-cabine/internal/game/door"
	"github.com/Faultbox/porta-cabine/internal/interact"
)

func mounted(t *testing.T) (*Director, *clock.Manual) {
	d := New(config.Default(), content.Empty())
	clk := clock.NewManual()
	require.NoError(t, d.Update(clk.Tick()))
	require.Equal(t, "door", d.Overlay().Scene)
	return d, clk
}

func TestFadeSequence(t *testing.T) {
	d, clk := mounted(t)
	d.SetFade(true)
	assert.Equal(t, FadingOut, d.Phase())
	assert.Equal(t, float32(1), d.Overlay().FadeTarget)

	require.NoError(t, d.Update(clk.Step(1499*time.Millisecond)))
	assert.False(t, d.Overlay().TextVisible)

	require.NoError(t, d.Update(clk.Step(time.Millisecond)))
	assert.True(t, d.Overlay().TextVisible)
	assert.Equal(t, "door", d.Overlay().Scene)

	require.NoError(t, d.Update(clk.Step(3*time.Second)))
	o := d.Overlay()
	assert.False(t, o.TextVisible)
	assert.Equal(t, "cabin", o.Scene)
	assert.True(t, o.Fade)
	assert.Equal(t, Switched, d.Phase())

	require.NoError(t, d.Update(clk.Step(100*time.Millisecond)))
	o = d.Overlay()
	assert.False(t, o.Fade)
	assert.Equal(t, float32(0), o.FadeTarget)
	assert.Equal(t, Revealed, d.Phase())
}

func TestFadeRisingEdgeOnly(t *testing.T) {
	d, _ := mounted(t)
	d.SetFade(true)
	d.SetFade(true)
	assert.Equal(t, 2, d.queue.Len())
	assert.True(t, d.Pending(timerText))
	assert.True(t, d.Pending(timerSwap))
}

func TestCloseCancelsTimers(t *testing.T) {
	d, clk := mounted(t)
	d.SetFade(true)
	require.NoError(t, d.Update(clk.Step(time.Second)))
	require.NoError(t, d.Close())
	assert.Equal(t, 0, d.queue.Len())

	require.NoError(t, d.Update(clk.Step(10*time.Second)))
	o := d.Overlay()
	assert.False(t, o.TextVisible)
	assert.Empty(t, o.Scene)
	assert.Equal(t, FadingOut, d.Phase())
}

func TestEndToEnd(t *testing.T) {
	d, clk := mounted(t)
	m := d.Door().Machine()

	require.NoError(t, d.HandleInput(interact.Event{Kind: interact.Click, Target: scenegraph.DoorNode}))
	assert.Equal(t, door.Recoiling, m.Phase())

	assert.Equal(t, door.Entering, m.Sample(53))
	assert.Equal(t, door.Complete, m.Sample(1.0))
	assert.Equal(t, door.Complete, m.Sample(0.9))
	assert.Equal(t, FadingOut, d.Phase())

	require.NoError(t, d.Update(clk.Step(4500*time.Millisecond)))
	o := d.Overlay()
	assert.Equal(t, "cabin", o.Scene)
	assert.True(t, o.Fade)

	require.NoError(t, d.Update(clk.Step(100*time.Millisecond)))
	o = d.Overlay()
	assert.Equal(t, "cabin", o.Scene)
	assert.Equal(t, float32(0), o.FadeTarget)
	assert.False(t, o.TextVisible)
}

func TestFlythroughDrivesFade(t *testing.T) {
	d, clk := mounted(t)
	require.NoError(t, d.HandleInput(interact.Event{Kind: interact.Click, Target: scenegraph.DoorNode}))

	for i := 0; i < 60*30 && d.Phase() != Revealed; i++ {
		require.NoError(t, d.Update(clk.Step(time.Second/60)))
	}
	assert.Equal(t, Revealed, d.Phase())
	assert.Equal(t, door.Complete, d.Door().Machine().Phase())

	// The cabin is live: its panel shows the welcome page after the modal
	// delay.
	for i := 0; i < 60*4; i++ {
		require.NoError(t, d.Update(clk.Step(time.Second/60)))
	}
	o := d.Overlay()
	assert.True(t, o.Cabin.ModalVisible)
	assert.True(t, o.Cabin.Page.Welcome)
}

func TestInputReachesCabin(t *testing.T) {
	d, clk := mounted(t)
	d.SetFade(true)
	require.NoError(t, d.Update(clk.Step(4600*time.Millisecond)))

	cat := content.Empty()
	cat.Records = []content.Record{{ID: "x", Title: "X"}}
	d.SetCatalog(cat)

	require.NoError(t, d.HandleInput(interact.Event{Kind: interact.Click, Target: scenegraph.ArrowRightNode}))
	assert.Equal(t, "x", d.Overlay().Cabin.Page.ID)

	require.NoError(t, d.HandleInput(interact.Event{Kind: interact.HoverEnter, Target: scenegraph.GlobeNode}))
	assert.True(t, d.Overlay().PointerCursor)
}

func TestCabinPressCountsFromDelivery(t *testing.T) {
	d, clk := mounted(t)
	d.SetFade(true)
	require.NoError(t, d.Update(clk.Step(4600*time.Millisecond)))
	require.Equal(t, "cabin", d.Overlay().Scene)

	clk.Advance(time.Second)
	c := clk.Tick()
	d.Advance(c.Elapsed)
	require.NoError(t, d.HandleInput(interact.Event{Kind: interact.Click, Target: scenegraph.ArrowRightNode}))
	require.NoError(t, d.Update(c))
	assert.True(t, d.Cabin().Snapshot().ArrowRightPressed)

	require.NoError(t, d.Update(clk.Step(150*time.Millisecond)))
	assert.False(t, d.Cabin().Snapshot().ArrowRightPressed)
}

func TestDoorCursor(t *testing.T) {
	d, _ := mounted(t)
	require.NoError(t, d.HandleInput(interact.Event{Kind: interact.HoverEnter, Target: scenegraph.DoorNode}))
	assert.True(t, d.Overlay().PointerCursor)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "fadingOut", FadingOut.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
