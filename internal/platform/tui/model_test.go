package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeRecorder struct {
	runs []storage.Run
	err  error
}

func (f *fakeRecorder) SaveRun(r storage.Run) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, r)
	return int64(len(f.runs)), nil
}

func newTestModel(t *testing.T, rec RunRecorder) (Model, *flappy.Engine) {
	t.Helper()
	e, err := flappy.New(config.DefaultFlappyConfig(), 42)
	if err != nil {
		t.Fatalf("flappy.New: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 30, Tick: 16 * time.Millisecond, Seed: 42}
	return NewModel(e, rec, cfg, ModelOptions{Player: "tester", ScreenshotDir: t.TempDir()}), e
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestFlapKeyAppliesImmediately(t *testing.T) {
	m, e := newTestModel(t, nil)

	for _, msg := range []tea.KeyMsg{{Type: tea.KeySpace}, {Type: tea.KeyUp}, runes("w")} {
		m, _ = update(t, m, TickMsg(time.Now()))
		m, _ = update(t, m, msg)
		if got, want := e.BirdVelocity(), config.DefaultFlappyConfig().Physics.FlapVelocity; got != want {
			t.Errorf("after %q velocity = %v, want %v", msg.String(), got, want)
		}
	}
}

func TestPauseKeyTogglesEngine(t *testing.T) {
	m, e := newTestModel(t, nil)

	m, _ = update(t, m, runes("p"))
	if e.Status() != flappy.Paused {
		t.Fatalf("status = %v, want Paused", e.Status())
	}
	ticks := e.Ticks()
	m, _ = update(t, m, TickMsg(time.Now()))
	if e.Ticks() != ticks {
		t.Error("paused engine advanced on tick")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if e.Status() != flappy.Running {
		t.Errorf("status = %v, want Running", e.Status())
	}
	if !strings.Contains(m.View(), "pause") {
		t.Error("help line missing from view")
	}
}

func TestTickReschedules(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.Init() == nil {
		t.Fatal("Init returned nil command")
	}
	_, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestRunRecordedOncePerSession(t *testing.T) {
	rec := &fakeRecorder{}
	m, e := newTestModel(t, rec)

	for i := 0; i < 200 && e.Status() != flappy.Ended; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if e.Status() != flappy.Ended {
		t.Fatal("bird never hit the ground")
	}
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(rec.runs))
	}
	run := rec.runs[0]
	if run.GameID != "flappy" || run.Player != "tester" || run.Seed != 42 {
		t.Errorf("unexpected run identity: %+v", run)
	}
	if run.Cause != flappy.CauseGround.String() {
		t.Errorf("cause = %q, want %q", run.Cause, flappy.CauseGround.String())
	}
	if run.Ticks != e.Ticks() || run.Score != e.Score() {
		t.Errorf("run %+v does not match engine ticks=%d score=%d", run, e.Ticks(), e.Score())
	}
	if !m.Recorded() {
		t.Error("Recorded() = false after game over")
	}

	m, _ = update(t, m, runes("r"))
	if m.Recorded() {
		t.Error("restart did not clear recorded flag")
	}
	if e.Status() != flappy.Running {
		t.Errorf("status after restart = %v", e.Status())
	}
	for i := 0; i < 200 && e.Status() != flappy.Ended; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if len(rec.runs) != 2 {
		t.Errorf("recorded %d runs after second session, want 2", len(rec.runs))
	}
	if rec.runs[1].Seed == rec.runs[0].Seed {
		t.Error("restart reused the previous seed")
	}
}

func TestRecorderErrorDoesNotStopGame(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	m, e := newTestModel(t, rec)

	for i := 0; i < 200 && e.Status() != flappy.Ended; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if !m.Recorded() {
		t.Error("failed save should still mark the session as handled")
	}
}

func TestQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t, nil)
		m, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%q returned no command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q did not quit", msg.String())
		}
		if m.View() != "" {
			t.Error("view not empty after quit")
		}
	}
}

func TestResizeReservesHelpRow(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.screen.Width() != 50 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, want 50x19", m.screen.Width(), m.screen.Height())
	}
}

func TestKeyMapAction(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{runes("w"), core.ActionJump},
		{runes("p"), core.ActionPause},
		{runes("r"), core.ActionRestart},
		{runes("q"), core.ActionQuit},
		{runes("x"), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}
	for _, tt := range tests {
		if got := k.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hi")
	s.SetColored(4, 1, '●', core.ColorYellow)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "●") {
		t.Errorf("rendered output missing content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want 2 rows, got %q", out)
	}
}
