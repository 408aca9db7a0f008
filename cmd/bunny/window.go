package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-bunny/internal/platform/desktop"
	"github.com/vovakirdan/happy-bunny/internal/scene"
)

var (
	flagCols int
	flagRows int
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window. Without a variant the window starts on the
title menu; with one it starts a run right away.

The mouse stands in for touch: click a bomb to blow it up, drag the
bunny to move it. Keys work as in the terminal.

Examples:
  bunny window
  bunny window bunny-physics
  bunny window --cols 60 --rows 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 80, "Playfield width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 24, "Playfield height in cells")
}

func runWindow(_ *cobra.Command, args []string) {
	if flagCols < 20 || flagRows < 10 {
		fmt.Fprintln(os.Stderr, "Error: the playfield needs at least 20x10 cells")
		os.Exit(1)
	}

	store := openStore()

	var director *scene.Director
	var env *scene.Env
	if len(args) == 0 {
		env = newEnv(variantArg(nil), store, flagCols, flagRows)
		director = scene.NewMenuDirector(env)
	} else {
		checkVariant(args[0])
		env = newEnv(args[0], store, flagCols, flagRows)
		var err error
		director, err = scene.NewGameDirector(env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
	}

	sound := newAudio()
	syncMute(sound, env)

	runErr := desktop.Run(director, env, sound, "Happy Bunny")

	sound.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
