package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/synapz/internal/store"
	"github.com/abhisek/synapz/internal/usefulness"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show interaction usefulness rankings",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		snap, err := s.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		scores := usefulness.NewTracker(snap.Data.Usefulness...).Scores()
		if len(scores) == 0 {
			fmt.Println("No sandbox practice recorded yet.")
			return nil
		}

		fmt.Printf("Usefulness by interaction (snapshot at sequence %d)\n", snap.Sequence)
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-16s  %-14s  %10s  %10s  %10s  %7s\n",
			"Interaction", "Cognitive", "Useful", "Retention", "Engage", "Samples")
		fmt.Println(strings.Repeat("─", 78))
		for _, sc := range scores {
			fmt.Printf("%-16s  %-14s  %10.3f  %10.3f  %10.3f  %7d\n",
				sc.InteractionType, sc.CognitiveType,
				sc.UsefulnessScore, sc.RetentionLift, sc.EngagementScore, sc.SampleSize)
		}
		return nil
	},
}
