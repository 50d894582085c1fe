package app

import (
	"time"

	"conway-ca/internal/ui"
	"conway-ca/pkg/core"
)

// Action is a user command issued to the viewer.
type Action int

const (
	ActionQuit Action = iota
	ActionTogglePause
	ActionResume
	ActionStepOnce
	ActionClear
	ActionReset
	ActionReseed
	ActionToggleUnlock
)

type clearer interface {
	Clear()
}

type toggler interface {
	Toggle(x, y int) error
}

// Controller holds the viewer state that is independent of the windowing layer.
type Controller struct {
	sim   core.Sim
	timer *core.FixedStep

	seed     int64
	paused   bool
	tickOnce bool

	newSeed func() int64
}

// NewController wraps sim, stepping it at tps generations per second.
func NewController(sim core.Sim, tps int, seed int64) *Controller {
	return &Controller{
		sim:     sim,
		timer:   core.NewFixedStep(tps),
		seed:    seed,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Status reports the state displayed on the HUD.
func (c *Controller) Status() ui.Status {
	return ui.Status{Paused: c.paused, Unlocked: c.timer.Unlocked()}
}

// Apply executes a. It returns true when the viewer should exit.
func (c *Controller) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return true
	case ActionTogglePause:
		c.paused = !c.paused
	case ActionResume:
		c.paused = false
	case ActionStepOnce:
		c.tickOnce = true
	case ActionClear:
		if cl, ok := c.sim.(clearer); ok {
			cl.Clear()
		}
	case ActionReset:
		c.reset(c.seed)
	case ActionReseed:
		c.reset(c.newSeed())
	case ActionToggleUnlock:
		c.timer.SetUnlocked(!c.timer.Unlocked())
	}
	return false
}

// ToggleCell flips a cell when the sim supports direct editing.
func (c *Controller) ToggleCell(x, y int) error {
	t, ok := c.sim.(toggler)
	if !ok {
		return nil
	}
	return t.Toggle(x, y)
}

// Tick advances the sim when a generation is due. It reports whether a step ran.
func (c *Controller) Tick() bool {
	if c.tickOnce {
		c.tickOnce = false
		c.sim.Step()
		return true
	}
	if c.paused || !c.timer.ShouldStep() {
		return false
	}
	c.sim.Step()
	return true
}

func (c *Controller) reset(seed int64) {
	c.seed = seed
	c.sim.Reset(seed)
	c.tickOnce = false
}
