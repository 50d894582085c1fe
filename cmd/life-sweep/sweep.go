package main

import (
	"bufio"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"conway-ca/pkg/core"
	"conway-ca/pkg/sims/life"
)

type sweepConfig struct {
	width, height int
	steps         int
	runs          int
	seed          int64
	workers       int
}

type runResult struct {
	seed       int64
	initial    int
	final      int
	peak       int
	extinctAt  int
	generation int
	elapsed    time.Duration
	sim        *life.Life
}

// sweep runs cfg.runs seeds starting at cfg.seed. Each worker owns the Life
// values it creates; results are returned sorted by seed.
func sweep(cfg sweepConfig) ([]runResult, error) {
	if cfg.runs <= 0 {
		return nil, errors.New("runs must be positive")
	}
	if cfg.steps < 0 {
		return nil, errors.New("steps must not be negative")
	}
	if _, err := life.New(cfg.width, cfg.height); err != nil {
		return nil, err
	}
	workers := cfg.workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(cfg, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < cfg.runs; i++ {
			jobs <- cfg.seed + int64(i)
		}
		close(jobs)
	}()

	all := make([]runResult, 0, cfg.runs)
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all, nil
}

func runSeed(cfg sweepConfig, seed int64) runResult {
	// Dimensions were validated by sweep.
	l, _ := life.New(cfg.width, cfg.height)
	l.Randomize(core.NewRNG(seed))

	res := runResult{seed: seed, initial: l.Population(), extinctAt: -1, sim: l}
	res.peak = res.initial
	if res.initial == 0 {
		res.extinctAt = 0
	}

	start := time.Now()
	for i := 0; i < cfg.steps; i++ {
		l.Step()
		pop := l.Population()
		if pop > res.peak {
			res.peak = pop
		}
		if pop == 0 && res.extinctAt < 0 {
			res.extinctAt = l.Generation()
		}
	}
	res.elapsed = time.Since(start)
	res.final = l.Population()
	res.generation = l.Generation()
	return res
}

// writeGrid prints one line per row, '#' for live cells and '.' for dead ones.
func writeGrid(w io.Writer, l *life.Life) error {
	bw := bufio.NewWriter(w)
	size := l.Size()
	cells := l.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := byte('.')
			if cells[y*size.W+x] != 0 {
				c = '#'
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
