package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jheine/lernbox/internal/app"
	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

// runApp loads the catalog, opens the store, reconciles the derived
// tables, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	if err := refreshDerived(ctx, st, catalog); err != nil {
		return err
	}

	return app.Run(app.NewDeps(catalog, st))
}

// refreshDerived syncs the topic aggregates and the subject index with
// the catalog. Topics that vanished from the bank are dropped, mastery
// of surviving topics is kept.
func refreshDerived(ctx context.Context, st *store.Store, catalog *bank.Catalog) error {
	if err := st.Topics().Refresh(ctx, catalog.TopicCounts()); err != nil {
		return fmt.Errorf("refresh topics: %w", err)
	}
	pairs := make([]store.SubjectScript, 0)
	for _, ss := range catalog.SubjectScripts() {
		pairs = append(pairs, store.SubjectScript{Subject: ss[0], Script: ss[1]})
	}
	if err := st.Subjects().Rebuild(ctx, pairs); err != nil {
		return fmt.Errorf("rebuild subject index: %w", err)
	}
	return nil
}
