package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rsarma/maestro/internal/achievements"
	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/store"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect and update session progress",
}

var progressStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show progress across the curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, engine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		summary := engine.Summary()
		fmt.Printf("Completed %d of %d sessions (%d%%). %d available, %d in progress, %d locked.\n\n",
			summary.Completed, summary.Total, summary.Percent,
			summary.Available, summary.InProgress, summary.Locked)

		var lastTrack curriculum.Track
		for _, sess := range engine.Sessions() {
			if sess.Item.Track != lastTrack {
				lastTrack = sess.Item.Track
				fmt.Println(curriculum.TrackDisplayName(lastTrack))
			}
			line := fmt.Sprintf("  %-11s  %-28s  %s",
				sess.Record.Status.String(), sess.Item.ID, sess.Item.Title)
			if sess.Record.Score != nil {
				line += fmt.Sprintf("  (scored %d)", *sess.Record.Score)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var progressStartCmd = &cobra.Command{
	Use:   "start <session-id>",
	Short: "Start an available session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, engine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := engine.Start(args[0])
		if err != nil {
			return err
		}
		if err := st.ProgressRepo().SaveAll(cmd.Context(), engine.Records()); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		fmt.Printf("Started %s (attempt %d).\n", rec.ItemID, rec.Attempts)
		return nil
	},
}

var progressCompleteCmd = &cobra.Command{
	Use:   "complete <session-id> <score>",
	Short: "Complete a session with a 0-100 score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[1], err)
		}

		st, engine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := engine.Complete(args[0], score)
		if err != nil {
			return err
		}
		if err := st.ProgressRepo().SaveAll(cmd.Context(), engine.Records()); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		fmt.Printf("Completed %s with score %d.\n", rec.ItemID, score)

		svc := newAchievementService(st)
		unlocked, err := svc.Evaluate(cmd.Context(), engine.Sessions())
		if err != nil {
			return fmt.Errorf("evaluate achievements: %w", err)
		}
		for _, a := range unlocked {
			fmt.Printf("Achievement unlocked: %s %s\n", a.Icon, a.Title)
		}
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("refusing to reset without --yes")
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

		ctx := cmd.Context()
		if err := st.ProgressRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		if err := st.AchievementRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear achievements: %w", err)
		}
		fmt.Println("Progress and achievements erased.")
		return nil
	},
}

func newAchievementService(st *store.Store) *achievements.Service {
	return achievements.NewService(curriculum.Default(), st.AchievementRepo())
}

// openEngine opens the store and restores the progression engine from
// persisted records.
func openEngine(cmd *cobra.Command) (*store.Store, *progression.Engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	engine := progression.NewEngine(curriculum.Default())
	engine.Initialize()

	records, err := st.ProgressRepo().Load(context.Background())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load progress: %w", err)
	}
	engine.Restore(records)
	return st, engine, nil
}

func init() {
	progressResetCmd.Flags().Bool("yes", false, "Confirm the reset")

	progressCmd.AddCommand(progressStatusCmd)
	progressCmd.AddCommand(progressStartCmd)
	progressCmd.AddCommand(progressCompleteCmd)
	progressCmd.AddCommand(progressResetCmd)
}
