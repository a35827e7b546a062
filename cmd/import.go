package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import question bank files",
	Long:  "Validates each JSON question bank, assigns identifiers to new questions, and copies the bank into the questions directory.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		questionsDir, err := resolveQuestionsDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve questions dir: %w", err)
		}
		catalog, err := bank.Load(questionsDir)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		total := 0
		for _, path := range args {
			n, err := bank.Import(catalog, questionsDir, path)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			fmt.Printf("Imported %d questions from %s\n", n, path)
			total += n
		}

		// Keep the derived tables in step with the grown catalog.
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := refreshDerived(ctx, st, catalog); err != nil {
			return err
		}

		fmt.Printf("Catalog now holds %d questions across %d topics\n",
			catalog.Len(), len(catalog.Topics()))
		return nil
	},
}
