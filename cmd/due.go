package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List questions due for review",
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

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		ids, err := st.Progress().Due(ctx, limit, catalog.IDs(), time.Now())
		if err != nil {
			return fmt.Errorf("query due questions: %w", err)
		}

		if len(ids) == 0 {
			fmt.Println("Nothing due. Come back tomorrow.")
			return nil
		}
		fmt.Printf("%d questions due for review:\n", len(ids))
		for _, id := range ids {
			line := id
			if q, ok := catalog.Get(id); ok {
				line = fmt.Sprintf("%-12s %s", id, q.Text)
			}
			fmt.Println("  " + line)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("limit", 20, "Maximum number of due questions to list")
}
