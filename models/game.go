package models

import (
	"math/rand"
	"time"
)

// Intner is the part of *rand.Rand used for shuffling.
type Intner interface {
	Intn(n int) int
}

// PlaceMines returns a width x height layout, indexed [y][x], holding
// exactly count mines (capped at the number of cells). A nil source uses a
// time-seeded one.
func PlaceMines(width, height, count int, r Intner) [][]bool {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Fisher–Yates over all coordinates, then mine the first count.
	coords := make([][2]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			coords[y*width+x] = [2]int{x, y}
		}
	}
	for i := len(coords) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}

	mines := make([][]bool, height)
	for y := range mines {
		mines[y] = make([]bool, width)
	}
	for i := 0; i < count && i < len(coords); i++ {
		x, y := coords[i][0], coords[i][1]
		mines[y][x] = true
	}

	return mines
}

// Level is a named board preset.
type Level struct {
	Number  int
	Width   int
	Height  int
	Density float64
}

var levels = []Level{
	{Number: 1, Width: 10, Height: 10, Density: 0.10},
	{Number: 2, Width: 15, Height: 15, Density: 0.18},
	{Number: 3, Width: 20, Height: 20, Density: 0.20},
	{Number: 4, Width: 25, Height: 25, Density: 0.20},
	{Number: 5, Width: 30, Height: 30, Density: 0.20},
}

// LevelPreset returns preset n (1-5). Anything else falls back to level 1.
func LevelPreset(n int) Level {
	if n < 1 || n > len(levels) {
		return levels[0]
	}
	return levels[n-1]
}

func Levels() []Level {
	return append([]Level(nil), levels...)
}
