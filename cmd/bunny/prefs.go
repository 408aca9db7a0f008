package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-bunny/internal/storage"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show stored preferences",
	Long: `Show the preferences kept in the database: the score of the last
run and whether the music is muted.

Examples:
  bunny prefs
  bunny prefs reset
  bunny prefs reset muted`,
	Args: cobra.NoArgs,
	Run:  runPrefs,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Delete one or all stored preferences",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPrefsReset,
}

func init() {
	prefsCmd.AddCommand(prefsResetCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runPrefs(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	prefs, err := store.Prefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading preferences: %v\n", err)
		return
	}

	if len(prefs) == 0 {
		fmt.Println("No preferences stored.")
		return
	}

	rows := make([][]string, len(prefs))
	for i, p := range prefs {
		rows[i] = []string{p.Key, p.Value, p.UpdatedAt.Format("2006-01-02 15:04")}
	}
	printTable([]string{"Key", "Value", "Updated"}, rows)
}

func runPrefsReset(_ *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	keys := []string{storage.PrefLastScore, storage.PrefMuted}
	if len(args) == 1 {
		keys = args
	}

	for _, k := range keys {
		if err := store.DeletePref(k); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	logger.Info("preferences reset", "keys", keys)
	fmt.Println("Preferences reset.")
}
