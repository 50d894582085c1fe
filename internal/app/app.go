//go:build ebiten

package app

import (
	"log"

	"conway-ca/internal/render"
	"conway-ca/internal/ui"
	"conway-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	keys    []ebiten.Key

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		ctrl:    NewController(sim, cfg.TPS, cfg.Seed),
		painter: render.NewGridPainter(size.W, size.H, render.LifeColors()),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		scale:   cfg.Scale,
	}
	for _, b := range keyBindings {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(b.key)); err != nil {
			log.Fatalf("key binding %q: %v", b.key, err)
		}
		g.keys = append(g.keys, k)
	}
	return g
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, k := range g.keys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if a, ok := actionForKey(k.String()); ok && g.ctrl.Apply(a) {
			return ebiten.Termination
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := ui.CellAt(mx, my, g.scale, g.sim.Size()); ok {
			if err := g.ctrl.ToggleCell(x, y); err != nil {
				log.Print(err)
			}
		}
	}

	g.overlay.Update(g.ctrl.Paused())
	g.ctrl.Tick()
	g.hud.Update(g.ctrl.Status())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
