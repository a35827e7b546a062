package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/stats"
	"github.com/jheine/lernbox/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a progress report",
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

		svc := stats.New(catalog, st.Topics(), st.Sessions())
		rep, err := svc.Report(ctx)
		if err != nil {
			return err
		}

		printReport(rep)
		return nil
	},
}

func printReport(rep *stats.Report) {
	ov := rep.Overview
	fmt.Println("Overall")
	fmt.Printf("  Sessions          %d\n", ov.TotalSessions)
	fmt.Printf("  Questions         %d\n", ov.QuestionsAnswered)
	fmt.Printf("  Correct           %d\n", ov.CorrectAnswers)
	fmt.Printf("  Accuracy          %.1f%%\n", ov.Accuracy)
	fmt.Printf("  Time spent        %d min\n", ov.MinutesSpent)
	fmt.Printf("  Topics mastered   %d of %d\n", ov.TopicsMastered, ov.TopicCount)
	if !ov.LastSession.IsZero() {
		fmt.Printf("  Last session      %s\n", ov.LastSession.Format("2006-01-02"))
	}

	fmt.Printf("\nThis week           %d questions, %.1f%% accuracy\n",
		rep.Weekly.Questions, rep.Weekly.Accuracy)

	if len(rep.Mastery) > 0 {
		fmt.Println("\nTopic mastery")
		names := make([]string, 0, len(rep.Mastery))
		for name := range rep.Mastery {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-24s %5.1f%%\n", name, rep.Mastery[name])
		}
	}

	if len(rep.Recent) > 0 {
		fmt.Println("\nLast 30 days")
		for _, day := range rep.Recent {
			fmt.Printf("  %s  %3d questions  %5.1f%%  %3d min\n",
				day.Date.Format("2006-01-02"), day.Questions, day.Accuracy, day.Minutes)
		}
	}
}
