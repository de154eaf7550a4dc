package cmd

import (
	"fmt"
	"os"

	"github.com/rsarma/maestro/internal/achievements"
	"github.com/rsarma/maestro/internal/activity"
	"github.com/rsarma/maestro/internal/advisor"
	"github.com/rsarma/maestro/internal/app"
	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/llm"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/recommend"
	"github.com/rsarma/maestro/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog := curriculum.Default()
	engine := progression.NewEngine(catalog)
	engine.Initialize()

	records, err := st.ProgressRepo().Load(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	engine.Restore(records)

	log := activity.NewLog()

	var source recommend.SeedSource
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Dynamic recommendations will be unavailable.")
		} else {
			source = advisor.New(provider, availableItems(engine))
		}
	}

	deps := &app.Deps{
		Catalog:      catalog,
		Progress:     engine,
		ProgressRepo: st.ProgressRepo(),
		Recommender:  recommend.NewEngine(catalog, source),
		Builder:      recommend.NewBuilder(log),
		Activity:     log,
		Achievements: achievements.NewService(catalog, st.AchievementRepo()),
		Version:      version,
	}

	return app.Run(deps)
}

// availableItems returns a closure listing the sessions the learner can
// start right now, for the advisor prompt.
func availableItems(engine *progression.Engine) func() []curriculum.Item {
	return func() []curriculum.Item {
		var items []curriculum.Item
		for _, sess := range engine.Sessions() {
			if sess.Record.Status == progression.StatusAvailable {
				items = append(items, sess.Item)
			}
		}
		return items
	}
}
