package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jheine/lernbox/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all learner progress",
	Long:  "Deletes per-question progress, topic mastery, the session log, and the subject index. Question files stay untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes all progress. Type 'yes' to continue: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
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

		if err := st.ResetProgress(ctx); err != nil {
			return err
		}
		fmt.Println("All progress wiped.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
