package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export questions as Anki cards",
	Long:  "Writes the selected questions as 'front; back' lines that Anki's text importer understands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		questionsDir, err := resolveQuestionsDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve questions dir: %w", err)
		}
		catalog, err := bank.Load(questionsDir)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		out, _ := cmd.Flags().GetString("out")

		f := bank.Filter{Difficulty: difficulty}
		if topic != "" {
			f.Topics = []string{topic}
		}
		ids := make([]string, 0)
		for _, q := range catalog.Filter(f) {
			ids = append(ids, q.ID)
		}
		if len(ids) == 0 {
			return fmt.Errorf("no questions match the given filters")
		}

		exportsDir := filepath.Join(filepath.Dir(questionsDir), "exports")
		path, n, err := export.AnkiFile(catalog, ids, out, exportsDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported %d cards to %s\n", n, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output file (default: timestamped file next to the question bank)")
	exportCmd.Flags().String("topic", "", "Only export questions tagged with this topic")
	exportCmd.Flags().String("difficulty", "", "Only export questions of this difficulty")
}
