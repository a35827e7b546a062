package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lernbox",
	Short: "Flashcard trainer with spaced repetition",
	Long:  "Lernbox is a terminal flashcard trainer that schedules reviews with spaced repetition and tracks mastery per topic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LERNBOX_DB env var)")
	rootCmd.PersistentFlags().String("questions", "", "Path to the question bank directory (overrides LERNBOX_QUESTIONS env var)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LERNBOX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveQuestionsDir returns the question bank directory using the
// --questions flag, then LERNBOX_QUESTIONS, then the default XDG path.
func resolveQuestionsDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return p, nil
	}
	return bank.DefaultQuestionsDir()
}
