package ui

import (
	"fmt"
	"strings"

	"conway-ca/pkg/core"
)

// Status carries viewer state shown alongside the sim's parameters.
type Status struct {
	Paused   bool
	Unlocked bool
}

var hotkeys = []string{
	"P/Space pause  Enter run",
	"S step  C clear  R reset",
	"N new seed  F unlock tps",
	"Click toggle  Q/Esc quit",
}

// CellAt maps a screen position to grid coordinates. ok is false when the
// position lies outside the grid.
func CellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Status", strings.ToUpper(name[:1]), name[1:])
}

// hudLines renders the HUD contents as plain text lines.
func hudLines(title string, snap core.ParameterSnapshot, st Status) []string {
	lines := []string{title, ""}
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-11s %s", p.Label, p.Value))
		}
	}
	state := "running"
	if st.Paused {
		state = "paused"
	}
	if st.Unlocked {
		state += " (unlocked)"
	}
	lines = append(lines, "", "State: "+state, "")
	return append(lines, hotkeys...)
}
