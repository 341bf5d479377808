package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagCSV   bool
	flagLimit int
)

// errNoJournal is returned when a journal command runs without --journal.
var errNoJournal = errors.New("no run journal: pass --journal <path>")

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Show recorded runs, newest first.

In a terminal this opens an interactive table; press enter on a run to
replay its seed. When output is piped, runs are printed as plain text.

Examples:
  flappy runs --journal ~/.flappy/runs.db
  flappy runs --journal ~/.flappy/runs.db --limit 5
  flappy runs --journal ~/.flappy/runs.db --csv > runs.csv`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagCSV, "csv", false, "Export all runs as CSV to stdout")
	runsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Number of runs to print in plain mode")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	if flagJournal == "" {
		return errNoJournal
	}

	store, err := storage.Open(flagJournal)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagCSV {
		n, err := store.ExportCSV(out)
		if err != nil {
			return err
		}
		logger.Debug("exported runs", "count", n)
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printRuns(out, store, flagLimit)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	selected, err := tui.RunJournal(store, width, height)
	if err != nil {
		return err
	}
	if selected == nil {
		return nil
	}

	logger.Info("replaying run", "seed", selected.Seed, "score", selected.Score)
	store.Close()
	playSeed(selected.Seed)
	return nil
}

// printRuns writes the latest runs and journal totals as plain text.
func printRuns(w io.Writer, src tui.JournalSource, limit int) error {
	runs, err := src.RecentRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "%-16s  %20s  %5s  %6s  %5s  %-8s  %s\n",
		"WHEN", "SEED", "SCORE", "TICKS", "PIPES", "CAUSE", "PLAYER")
	for _, r := range runs {
		fmt.Fprintf(w, "%-16s  %20d  %5d  %6d  %5d  %-8s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Seed, r.Score, r.Ticks, r.Spawned, r.Cause, r.Player)
	}

	stats, err := src.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d runs, %d ticks played, mean score %.2f\n",
		stats.Runs, stats.TotalTicks, stats.MeanScore)
	return nil
}
