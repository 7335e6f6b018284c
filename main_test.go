package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/termsweeper/config"
)

func TestNewGridExactMines(t *testing.T) {
	g, seed := newGrid(&config.Config{Width: 8, Height: 6, Mines: 12, Seed: 5})
	assert.Equal(t, int64(5), seed)
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 6, g.Height())
	assert.Equal(t, 12, g.MineCount())
}

func TestNewGridLevel(t *testing.T) {
	g, _ := newGrid(&config.Config{Width: 3, Height: 3, Density: 0.5, Level: 3, Seed: 1})
	assert.Equal(t, 20, g.Width())
	assert.Equal(t, 20, g.Height())
}

func TestNewGridSeedIsDeterministic(t *testing.T) {
	cfg := &config.Config{Width: 12, Height: 12, Density: 0.2, Seed: 77}
	a, _ := newGrid(cfg)
	b, _ := newGrid(cfg)
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			assert.Equal(t, a.Cell(x, y).Content, b.Cell(x, y).Content, "(%d,%d)", x, y)
		}
	}
}

func TestNewGridReportsClockSeed(t *testing.T) {
	a, seed := newGrid(&config.Config{Width: 12, Height: 12, Density: 0.2})
	require.NotZero(t, seed)

	b, replayed := newGrid(&config.Config{Width: 12, Height: 12, Density: 0.2, Seed: seed})
	assert.Equal(t, seed, replayed)
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			assert.Equal(t, a.Cell(x, y).Content, b.Cell(x, y).Content, "(%d,%d)", x, y)
		}
	}
}
