package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-bunny/internal/registry"
)

var (
	flagClearScores bool
	flagScoreLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best runs of a variant (default: bunny).

Examples:
  bunny scores
  bunny scores bunny-physics --limit 0
  bunny scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded scores of the variant")
	scoresCmd.Flags().IntVarP(&flagScoreLimit, "limit", "n", 10, "Number of runs to show, 0 for all")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := variantArg(args)
	checkVariant(gameID)
	info, _ := registry.Info(gameID)

	store := openStoreOrExit()
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Scores of %s cleared.\n", info.Title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n\n", info.Title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'bunny play %s' to set the first high score!\n", gameID)
		return
	}

	rows := make([][]string, len(scores))
	for i, e := range scores {
		rows[i] = []string{"#" + strconv.Itoa(i+1), strconv.Itoa(e.Score), e.CreatedAt.Format("2006-01-02 15:04")}
	}
	printTable([]string{"Rank", "Score", "Date"}, rows)

	if st, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", st.HighScore, st.GamesCount, st.AvgScore)
	}
}
