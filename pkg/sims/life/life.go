package life

import (
	"fmt"

	"conway-ca/pkg/core"
)

// neighborOffsets lists the Moore neighbourhood excluding the centre cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Life implements Conway's Game of Life on a toroidal grid.
//
// A Life value has a single owner; it performs no locking. Callers sharing it
// between goroutines must serialise access themselves.
type Life struct {
	grid      *core.ByteGrid
	neighbors []uint8

	seed       int64
	generation int
}

// New returns a Life simulation with the provided dimensions and every cell dead.
func New(w, h int) (*Life, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, w, h)
	}
	g := core.NewByteGrid(w, h)
	return &Life{grid: g, neighbors: make([]uint8, len(g.Cells()))}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the current grid values, row-major, 1 for alive and 0 for dead.
// The slice is owned by l and is rewritten by Step.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Generation returns the number of Step calls since the last Clear, Reset or Randomize.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.grid.Count() }

// IsAlive reports whether cell (x, y) is alive.
func (l *Life) IsAlive(x, y int) (bool, error) {
	if err := l.check(x, y); err != nil {
		return false, err
	}
	return l.grid.Cells()[l.grid.Index(x, y)] != 0, nil
}

// Toggle flips the state of cell (x, y).
func (l *Life) Toggle(x, y int) error {
	if err := l.check(x, y); err != nil {
		return err
	}
	l.grid.Cells()[l.grid.Index(x, y)] ^= 1
	return nil
}

// Set forces cell (x, y) to the given state.
func (l *Life) Set(x, y int, alive bool) error {
	if err := l.check(x, y); err != nil {
		return err
	}
	var v uint8
	if alive {
		v = 1
	}
	l.grid.Cells()[l.grid.Index(x, y)] = v
	return nil
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.grid.Clear()
	l.generation = 0
}

// Randomize assigns every cell an independent bit drawn from src.
func (l *Life) Randomize(src core.BitSource) {
	core.FillBinary(src, l.grid.Cells())
	l.generation = 0
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	l.Randomize(core.NewRNG(seed))
}

// Step advances the simulation by one generation.
//
// Neighbour counts for the whole board are gathered before any cell changes,
// so every new state depends only on the previous generation.
func (l *Life) Step() {
	cells := l.grid.Cells()
	clear(l.neighbors)

	w, h := l.grid.W, l.grid.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] == 0 {
				continue
			}
			for _, off := range neighborOffsets {
				nx, ny := l.grid.Wrap(x+off[0], y+off[1])
				l.neighbors[l.grid.Index(nx, ny)]++
			}
		}
	}

	for i, n := range l.neighbors {
		if (cells[i] != 0 && (n == 2 || n == 3)) || (cells[i] == 0 && n == 3) {
			cells[i] = 1
		} else {
			cells[i] = 0
		}
	}
	l.generation++
}

// Parameters reports the values shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.grid.W),
				core.IntParam("h", "Height", l.grid.H),
				core.Int64Param("seed", "Seed", l.seed),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}

func (l *Life) check(x, y int) error {
	if !l.grid.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfBounds, x, y, l.grid.W, l.grid.H)
	}
	return nil
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		l, err := New(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
