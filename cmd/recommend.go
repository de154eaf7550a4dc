package cmd

import (
	"fmt"
	"os"

	"github.com/rsarma/maestro/internal/activity"
	"github.com/rsarma/maestro/internal/advisor"
	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/llm"
	"github.com/rsarma/maestro/internal/recommend"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print recommendations for a view",
	RunE: func(cmd *cobra.Command, args []string) error {
		viewName, _ := cmd.Flags().GetString("view")

		view := recommend.View(viewName)
		known := false
		for _, v := range recommend.Views() {
			if v == view {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown view %q", viewName)
		}

		st, engine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var source recommend.SeedSource
		if cfg, ok := llm.DiscoverConfig(); ok {
			provider, perr := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
			if perr != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured, using static suggestions:", perr)
			} else {
				source = advisor.New(provider, availableItems(engine))
			}
		}

		recommender := recommend.NewEngine(curriculum.Default(), source)
		log := activity.NewLog()
		snap := recommend.NewBuilder(log).Build(view, "", "", engine.Summary())
		result := recommender.Recommend(cmd.Context(), snap, engine.CompletedItems())

		fmt.Printf("Recommendations for the %s view:\n\n", view)
		if len(result.Suggestions) == 0 {
			fmt.Println("  (none)")
		}
		for _, s := range result.Suggestions {
			fmt.Printf("  [%s] %s (%d)\n      %s\n", s.Kind, s.Title, s.RelevanceScore, s.Description)
		}

		if len(result.JustInTimeTips) > 0 {
			fmt.Println("\nTips:")
			for _, tip := range result.JustInTimeTips {
				fmt.Println("  •", tip)
			}
		}

		if len(result.SkillGaps) > 0 {
			fmt.Println("\nSkill gaps:")
			for _, gap := range result.SkillGaps {
				fmt.Printf("  %s: %d of %d\n", gap.Skill, gap.CurrentLevel, gap.TargetLevel)
				for _, action := range gap.Actions {
					fmt.Println("    -", action)
				}
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("view", "workflow", "View context (workflow, communication, dispatch, creator, projects)")
}
