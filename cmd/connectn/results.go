package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/platform/tui"
	"github.com/vovakirdan/connectn/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded games and standings",
	Long: `Display the most recent games, the player standings and a summary of
all recorded results.

Examples:
  connectn results
  connectn results --limit 25
  connectn results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games and players to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded result")
}

func runResults(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	recent, err := store.RecentResults(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	standings, err := store.Standings(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving standings: %v\n", err)
		os.Exit(1)
	}
	summary, err := store.Summarize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent games")
	fmt.Println()
	fmt.Println(tui.ResultsTable(recent))
	fmt.Println()
	fmt.Println("Standings")
	fmt.Println()
	fmt.Println(tui.StandingsTable(standings))
	fmt.Println()
	fmt.Println(tui.SummaryLine(*summary))

	if summary.Games == 0 {
		fmt.Println()
		fmt.Println("Play 'connectn play' to record the first game!")
	}
}
