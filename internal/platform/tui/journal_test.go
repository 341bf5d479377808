package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeSource struct {
	runs []storage.Run
	err  error
}

func (f fakeSource) RecentRuns(limit int) ([]storage.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.runs) > limit {
		return f.runs[:limit], nil
	}
	return f.runs, nil
}

func (f fakeSource) Stats() (*storage.JournalStats, error) {
	return &storage.JournalStats{Runs: len(f.runs), TotalTicks: 300, MeanScore: 2.5, LastPlayed: time.Now()}, nil
}

func TestJournalModelSelectsRun(t *testing.T) {
	src := fakeSource{runs: []storage.Run{
		{ID: 2, Seed: 99, Score: 3, Cause: "Obstacle", CreatedAt: time.Now()},
		{ID: 1, Seed: 7, Score: 2, Cause: "Ground", CreatedAt: time.Now()},
	}}
	m := NewJournalModel(src, 100, 30)

	view := m.View()
	if !strings.Contains(view, "RUN JOURNAL") || !strings.Contains(view, "99") {
		t.Errorf("view missing title or rows:\n%s", view)
	}
	if !strings.Contains(view, "mean score 2.5") {
		t.Errorf("view missing stats:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(JournalModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(JournalModel)

	if cmd == nil {
		t.Fatal("enter did not quit the viewer")
	}
	sel := m.Selected()
	if sel == nil || sel.Seed != 7 {
		t.Fatalf("selected = %+v, want seed 7", sel)
	}
}

func TestJournalModelEmpty(t *testing.T) {
	m := NewJournalModel(fakeSource{}, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty journal message missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(JournalModel).Selected() != nil {
		t.Error("enter on empty journal selected a run")
	}
}

func TestJournalModelLoadError(t *testing.T) {
	m := NewJournalModel(fakeSource{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "error: locked") {
		t.Error("load error not shown")
	}
}
