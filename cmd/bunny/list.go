package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-bunny/internal/registry"
	"github.com/vovakirdan/happy-bunny/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long: `Shows every registered variant with its best score and number of runs.
The variants differ in how a bomb hitting the bunny is detected.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	var stats map[string]*storage.GameStats
	if store := openStore(); store != nil {
		stats, _ = store.GetAllGamesStats() //nolint:errcheck // Columns stay empty
		store.Close()
	}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		best, runs := "-", "0"
		if st, ok := stats[g.ID]; ok {
			best, runs = strconv.Itoa(st.HighScore), strconv.Itoa(st.GamesCount)
		}
		rows = append(rows, []string{g.ID, g.Title, best, runs})
	}
	printTable([]string{"ID", "Title", "Best", "Runs"}, rows)

	for _, g := range games {
		if g.Description != "" {
			fmt.Printf("  %s: %s\n", g.ID, g.Description)
		}
	}
	fmt.Println()
	fmt.Println("Run 'bunny play <id>' to play a variant.")
}
