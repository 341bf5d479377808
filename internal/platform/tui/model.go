package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Game is the engine surface the driver needs.
type Game interface {
	ID() string
	Flap()
	TogglePause()
	Restart()
	Tick()
	Render(dst *core.Screen)
	State() core.GameState
	Summary() flappy.RunSummary
}

var _ Game = (*flappy.Engine)(nil)

// RunRecorder stores finished sessions. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

var _ RunRecorder = (*storage.Store)(nil)

// ModelOptions carries the optional parts of a Model.
type ModelOptions struct {
	// Player is written to the journal with every run.
	Player string
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
	// ScreenshotDir overrides ~/.flappy/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that drives one engine.
type Model struct {
	game      Game
	screen    *core.Screen
	journal   RunRecorder
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	player    string
	shotDir   string
	gameState core.GameState
	recorded  bool // Run already written for the current session
	quitting  bool
}

// NewModel creates a model for game. journal may be nil.
func NewModel(game Game, journal RunRecorder, cfg core.RuntimeConfig, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		journal:   journal,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		player:    opts.Player,
		shotDir:   opts.ScreenshotDir,
		gameState: game.State(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH))
	return m
}

// playfieldRows leaves the last terminal row for the help line.
func playfieldRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies input to the engine right away. Bubble Tea delivers
// messages one at a time, so input never interleaves with a tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.game.Flap()
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionRestart:
		m.game.Restart()
		m.recorded = false
		m.logger.Debug("session restarted", "player", m.player, "seed", m.game.Summary().Seed)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick advances the simulation one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Tick()
	m.gameState = m.game.State()

	if m.gameState.GameOver && !m.recorded {
		m.recordRun()
		m.recorded = true
	}

	return m, tickCmd(m.config.Tick)
}

// recordRun writes the finished session to the journal.
func (m Model) recordRun() {
	sum := m.game.Summary()
	m.logger.Info("session ended",
		"player", m.player,
		"seed", sum.Seed,
		"score", sum.Score,
		"cause", sum.Cause,
	)
	if m.journal == nil {
		return
	}
	run := storage.Run{
		GameID:  m.game.ID(),
		Player:  m.player,
		Seed:    sum.Seed,
		Score:   sum.Score,
		Ticks:   sum.Ticks,
		Spawned: sum.Spawned,
		Cause:   sum.Cause.String(),
	}
	if _, err := m.journal.SaveRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot resolve home directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// Recorded reports whether the current session has been journaled.
func (m Model) Recorded() bool {
	return m.recorded
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program driving game.
func Run(game Game, journal RunRecorder, cfg core.RuntimeConfig, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(game, journal, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
