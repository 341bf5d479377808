package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagTicks     int
	flagFlapEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print its summary",
	Long: `Drive the engine without a terminal UI. The bird flaps on a fixed
schedule until it crashes or the tick limit is reached.

The same seed and schedule always give the same result, so a run from the
journal can be checked against its recorded score.

Examples:
  flappy sim --seed 42
  flappy sim --seed 42 --flap-every 18 --ticks 5000`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N ticks (0 = never)")
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	sum, err := simulate(cfg, seed, flagTicks, flagFlapEvery)
	if err != nil {
		logger.Fatal("simulation failed", "error", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), sum)
}

// simulate runs one session for at most ticks steps, flapping every
// flapEvery ticks, and returns its summary.
func simulate(cfg config.FlappyConfig, seed int64, ticks, flapEvery int) (flappy.RunSummary, error) {
	e, err := flappy.New(cfg, seed)
	if err != nil {
		return flappy.RunSummary{}, err
	}

	in := core.NewInputFrame()
	for i := 1; i <= ticks; i++ {
		if flapEvery > 0 && i%flapEvery == 0 {
			in.Set(core.ActionJump)
		}
		res := e.Step(in)
		in.Clear()
		if res.Ended {
			logger.Debug("session ended", "tick", i, "cause", e.Cause())
			break
		}
	}
	return e.Summary(), nil
}
