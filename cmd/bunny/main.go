// bunny is Happy Bunny: steer a bunny left and right while bombs fall from
// the sky, tap bombs to blow them up, and survive as long as you can.
//
// Usage:
//
//	bunny list               - List game variants
//	bunny play [variant]     - Play in the terminal
//	bunny menu               - Pick a variant from a menu
//	bunny window [variant]   - Play in a desktop window
//	bunny serve              - Start SSH server for remote play
//	bunny scores [variant]   - Show high scores
//	bunny prefs              - Show or reset stored preferences
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bunny/bunny.db)
//	--config <path>       - Custom bunny.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
//	--profile <mode>      - cpu or mem profiling
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-bunny/internal/games/bunny"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagProfile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bunny",
	Short: "Happy Bunny - dodge the falling bombs",
	Long: `Happy Bunny is a small arcade game. Bombs fall from the top of the
screen; move the bunny out of the way or tap the bombs to blow them up.
Every three seconds alive is worth ten points.

Available commands:
  list     - Show the game variants
  play     - Play in the terminal
  menu     - Interactive variant picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  prefs    - Show or reset stored preferences

Examples:
  bunny play
  bunny play bunny-physics --difficulty hard
  bunny window
  bunny serve --ssh :2222
  bunny scores`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		teardown()
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bunny/bunny.db", "Path to scores and preferences database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bunny.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (full screen commands log nowhere otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Write a profile to the current directory: cpu or mem")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(prefsCmd)
}

// setup applies the global flags shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	bunny.SetConfigPath(flagConfig)
	bunny.SetDifficultyPreset(flagDifficulty)

	// serve owns the terminal as a plain log stream
	toStderr := cmd.Name() == serveCmd.Name()
	if err := setupLogger(toStderr); err != nil {
		return err
	}
	return startProfile(flagProfile)
}

// teardown releases what setup acquired.
func teardown() {
	stopProfile()
	closeLogFile()
}
