package main

import (
	"bytes"
	"testing"

	"conway-ca/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepDeterministicAndOrdered(t *testing.T) {
	cfg := sweepConfig{width: 24, height: 16, steps: 12, runs: 6, seed: 100, workers: 3}

	first, err := sweep(cfg)
	require.NoError(t, err)
	require.Len(t, first, 6)

	cfg.workers = 1
	second, err := sweep(cfg)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, int64(100+i), first[i].seed)
		assert.Equal(t, first[i].seed, second[i].seed)
		assert.Equal(t, first[i].final, second[i].final)
		assert.Equal(t, first[i].sim.Cells(), second[i].sim.Cells())
		assert.Equal(t, 12, first[i].generation)
		assert.GreaterOrEqual(t, first[i].peak, first[i].initial)
		assert.GreaterOrEqual(t, first[i].peak, first[i].final)
	}
}

func TestSweepRejectsBadConfig(t *testing.T) {
	_, err := sweep(sweepConfig{width: 0, height: 4, runs: 1})
	assert.ErrorIs(t, err, life.ErrInvalidDimension)

	_, err = sweep(sweepConfig{width: 4, height: 4, runs: 0})
	assert.Error(t, err)

	_, err = sweep(sweepConfig{width: 4, height: 4, runs: 1, steps: -1})
	assert.Error(t, err)
}

func TestWriteGrid(t *testing.T) {
	l, err := life.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, l.Set(0, 0, true))
	require.NoError(t, l.Set(2, 1, true))

	var buf bytes.Buffer
	require.NoError(t, writeGrid(&buf, l))
	assert.Equal(t, "#..\n..#\n", buf.String())
}
