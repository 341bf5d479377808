package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	a, err := simulate(cfg, 42, 3000, 18)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := simulate(cfg, 42, 3000, 18)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if a != b {
		t.Errorf("same seed and schedule gave %v and %v", a, b)
	}
	if a.Seed != 42 {
		t.Errorf("seed = %d, want 42", a.Seed)
	}
}

func TestSimulateWithoutFlapsHitsGround(t *testing.T) {
	sum, err := simulate(config.DefaultFlappyConfig(), 7, 1000, 0)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if sum.Cause != flappy.CauseGround {
		t.Errorf("cause = %v, want %v", sum.Cause, flappy.CauseGround)
	}
	if sum.Score != 0 {
		t.Errorf("score = %d, want 0", sum.Score)
	}
	if sum.Ticks >= 1000 {
		t.Errorf("ran %d ticks, expected an early crash", sum.Ticks)
	}
}

func TestSimulateRespectsTickLimit(t *testing.T) {
	sum, err := simulate(config.DefaultFlappyConfig(), 7, 10, 0)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if sum.Ticks != 10 || sum.Cause != flappy.CauseNone {
		t.Errorf("got %v, want 10 ticks and no end cause", sum)
	}
}

func TestSimulateRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	if _, err := simulate(cfg, 1, 10, 0); err == nil {
		t.Error("expected error for zero gravity")
	}
}

func TestPrintRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printRuns(&buf, store, 10); err != nil {
		t.Fatalf("printRuns: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("empty journal output = %q", buf.String())
	}

	for _, seed := range []int64{11, 22, 33} {
		if _, err := store.SaveRun(storage.Run{GameID: "flappy", Player: "p", Seed: seed, Score: 1, Ticks: 100, Cause: "Ground"}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	buf.Reset()
	if err := printRuns(&buf, store, 2); err != nil {
		t.Fatalf("printRuns: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "33") || !strings.Contains(out, "22") {
		t.Errorf("latest runs missing:\n%s", out)
	}
	if strings.Contains(out, " 11 ") {
		t.Errorf("limit not applied:\n%s", out)
	}
	if !strings.Contains(out, "3 runs, 300 ticks played") {
		t.Errorf("totals missing:\n%s", out)
	}
}
