package app

import (
	"flag"
	"testing"

	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*Controller, *life.Life) {
	t.Helper()
	l, err := life.New(8, 8)
	require.NoError(t, err)
	l.Reset(5)
	c := NewController(l, 60, 5)
	c.timer.SetUnlocked(true)
	return c, l
}

func TestControllerPauseAndStep(t *testing.T) {
	c, l := newController(t)

	assert.True(t, c.Tick())
	assert.Equal(t, 1, l.Generation())

	assert.False(t, c.Apply(ActionTogglePause))
	assert.True(t, c.Paused())
	assert.False(t, c.Tick())
	assert.Equal(t, 1, l.Generation())

	c.Apply(ActionStepOnce)
	assert.True(t, c.Tick())
	assert.False(t, c.Tick())
	assert.Equal(t, 2, l.Generation())

	c.Apply(ActionResume)
	assert.False(t, c.Paused())
	assert.True(t, c.Tick())
}

func TestControllerResetAndReseed(t *testing.T) {
	c, l := newController(t)
	initial := append([]uint8(nil), l.Cells()...)

	c.Tick()
	c.Apply(ActionReset)
	assert.Equal(t, initial, l.Cells())
	assert.Zero(t, l.Generation())

	c.newSeed = func() int64 { return 99 }
	c.Apply(ActionReseed)
	assert.Equal(t, int64(99), c.seed)

	other, err := life.New(8, 8)
	require.NoError(t, err)
	other.Reset(99)
	assert.Equal(t, other.Cells(), l.Cells())
}

func TestControllerClearAndToggle(t *testing.T) {
	c, l := newController(t)

	c.Apply(ActionClear)
	assert.Zero(t, l.Population())

	require.NoError(t, c.ToggleCell(3, 4))
	alive, err := l.IsAlive(3, 4)
	require.NoError(t, err)
	assert.True(t, alive)

	assert.ErrorIs(t, c.ToggleCell(8, 0), life.ErrIndexOutOfBounds)
}

func TestControllerUnlockAndQuit(t *testing.T) {
	c, _ := newController(t)
	assert.True(t, c.Status().Unlocked)
	c.Apply(ActionToggleUnlock)
	assert.False(t, c.Status().Unlocked)
	assert.True(t, c.Apply(ActionQuit))
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "40", "-h", "30", "-seed", "7", "-tps", "12"}))

	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 12, cfg.TPS)
	assert.Equal(t, map[string]string{"w": "40", "h": "30"}, cfg.SimConfig())

	sim, err := core.Build(cfg.Sim, cfg.SimConfig())
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 40, H: 30}, sim.Size())
}
