package cmd

import (
	"github.com/rsarma/maestro/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "maestro",
	Short: "Progressive learning for multi-agent orchestration",
	Long:  "Maestro — a terminal companion that teaches multi-agent orchestration through a progressive session curriculum with contextual recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MAESTRO_DB env var)")

	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MAESTRO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
