package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dimaq12/termsweeper/config"
	"github.com/dimaq12/termsweeper/game"
	"github.com/dimaq12/termsweeper/logging"
	"github.com/dimaq12/termsweeper/models"
)

// newGrid builds the board described by cfg and returns the seed it used,
// so a clock-seeded game can be replayed with --seed. An exact mine count
// wins over density.
func newGrid(cfg *config.Config) (*models.Grid, int64) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	width, height, density := cfg.Board()
	if cfg.Mines > 0 {
		return models.NewGridFromMines(models.PlaceMines(width, height, cfg.Mines, r)), seed
	}
	return models.NewGrid(width, height, density, r), seed
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
	game.Log = log

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Error("stdout is not a terminal")
		fmt.Fprintln(os.Stderr, "minesweeper: stdout is not a terminal")
		os.Exit(1)
	}

	grid, seed := newGrid(cfg)
	log.WithFields(logrus.Fields{
		"level": cfg.Level,
		"seed":  seed,
	}).Debug("board created\n" + grid.String())

	status, err := game.NewMinesweeperService(grid).Run()
	if err != nil {
		log.WithError(err).Error("terminal failure")
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}

	switch status {
	case game.Won:
		fmt.Println("You won!")
	case game.Lost:
		fmt.Println("You lost!")
	default:
		fmt.Println("Quitting...")
	}
}
