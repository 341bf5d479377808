package main

import (
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a local game.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --journal ~/.flappy/runs.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	playSeed(flagSeed)
}

// playSeed runs a local session. A zero seed is replaced by the clock.
func playSeed(seed int64) {
	cfg := mustLoadConfig()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, err := flappy.New(cfg, seed)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Tick:    cfg.TickInterval(),
		Seed:    seed,
	}

	var journal tui.RunRecorder
	var store *storage.Store
	if flagJournal != "" {
		store, err = storage.Open(flagJournal)
		if err != nil {
			logger.Warn("could not open run journal", "error", err)
			store = nil
		} else {
			journal = store
		}
	}

	// Logs would draw over the alt screen.
	opts := tui.ModelOptions{
		Player: playerName(),
		Logger: log.New(io.Discard),
	}

	runErr := tui.Run(engine, journal, rc, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		os.Exit(1)
	}
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "local"
}
