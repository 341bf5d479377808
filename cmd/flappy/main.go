// flappy is a terminal Flappy Bird clone.
//
// Usage:
//
//	flappy [play]          - Play locally (default)
//	flappy serve           - Start SSH server for remote play
//	flappy sim             - Run a headless session and print its summary
//	flappy runs            - Browse the run journal
//	flappy config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--seed <value>    - RNG seed for reproducible obstacle streams
//	--journal <path>  - Record finished runs to a SQLite journal
//	--verbose         - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagJournal string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flap through an endless stream of pipes without touching them,
the ceiling or the ground.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  sim      - Run a deterministic headless session
  runs     - Browse recorded runs
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy play --journal ~/.flappy/runs.db
  flappy sim --seed 42 --flap-every 18
  flappy serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run:           runPlay,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Path to run journal database (empty = off)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// mustLoadConfig loads the game config or exits. An invalid config is fatal.
func mustLoadConfig() config.FlappyConfig {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	logger.Debug("config loaded", "source", source)
	return cfg
}
