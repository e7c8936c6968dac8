package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the high score",
	Long: `Display the stored high score. A record earned in another working
directory is shown but does not count here.

Examples:
  flappy score
  flappy score --store sqlite`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	tag, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	store, err := storage.Open(flagStore, recordPath(flagStore, flagHighScore))
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Load()
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "No high score recorded yet.")
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Run 'flappy' to set the first one!")
		return nil
	}
	if err != nil {
		return err
	}

	printRecord(cmd.OutOrStdout(), rec, tag)
	return nil
}

// printRecord shows the high score that counts in context tag.
func printRecord(out io.Writer, rec storage.Record, tag string) {
	if rec.Path != tag {
		fmt.Fprintf(out, "High score: 0\n\n")
		fmt.Fprintf(out, "The stored record (%d) was set in %s.\n", rec.HighScore, rec.Path)
		return
	}
	fmt.Fprintf(out, "High score: %d\n", rec.HighScore)
}
