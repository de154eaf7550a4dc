package cmd

import (
	"fmt"
	"strings"

	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/spf13/cobra"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "List the session curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		trackFilter, _ := cmd.Flags().GetString("track")
		difficultyFilter, _ := cmd.Flags().GetString("difficulty")

		catalog := curriculum.Default()

		fmt.Printf("%-28s  %-34s  %-22s  %-12s  %s\n",
			"ID", "Title", "Track", "Difficulty", "Mins")
		fmt.Println(strings.Repeat("─", 108))

		shown := 0
		for _, item := range catalog.All() {
			if trackFilter != "" && string(item.Track) != trackFilter {
				continue
			}
			if difficultyFilter != "" && !strings.EqualFold(item.Difficulty.String(), difficultyFilter) {
				continue
			}
			fmt.Printf("%-28s  %-34s  %-22s  %-12s  %d\n",
				item.ID,
				item.Title,
				curriculum.TrackDisplayName(item.Track),
				item.Difficulty.String(),
				item.EstimatedMins,
			)
			shown++
		}

		if shown == 0 {
			fmt.Println("No sessions match the given filters.")
		}
		return nil
	},
}

func init() {
	curriculumCmd.Flags().String("track", "", "Filter by track (foundations, coordination, scaling, mastery)")
	curriculumCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate, advanced, expert)")
}
