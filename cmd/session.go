package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/synapz/internal/capacity"
	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/engine"
	"github.com/abhisek/synapz/internal/llm"
	"github.com/abhisek/synapz/internal/session"
	"github.com/abhisek/synapz/internal/store"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Build and print a session plan",
	Long: "Builds a session from a concept file: due reviews first, new concepts " +
		"interleaved round-robin, synthesis checkpoints and sandbox exercises " +
		"placed when capacity allows. Prints the resulting plan.",
	RunE: func(cmd *cobra.Command, args []string) error {
		conceptsPath, _ := cmd.Flags().GetString("concepts")
		userID, _ := cmd.Flags().GetString("user")
		projectID, _ := cmd.Flags().GetString("project")
		hoursSlept, _ := cmd.Flags().GetFloat64("hours-slept")
		hourOfDay, _ := cmd.Flags().GetInt("hour")
		recentSessions, _ := cmd.Flags().GetInt("recent-sessions")
		skipPretest, _ := cmd.Flags().GetBool("skip-pretest")
		targets, _ := cmd.Flags().GetStringSlice("target")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err := newLogger(cfg.Logging)
		if err != nil {
			return err
		}
		defer logger.Sync()

		list, err := concepts.LoadFile(conceptsPath)
		if err != nil {
			return fmt.Errorf("load concepts: %w", err)
		}

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
		events := s.EventRepo()

		// A provider that cannot be built is not fatal: synthesis, sandbox
		// placement, and free-text grading all degrade to deterministic
		// behavior without one.
		var provider llm.Provider
		llmCfg, err := cfg.LLMConfig()
		if err != nil {
			return fmt.Errorf("llm config: %w", err)
		}
		if provider, err = llm.NewProvider(ctx, llmCfg, events); err != nil {
			logger.Warn("collaborator unavailable, using deterministic fallbacks", zap.Error(err))
			provider = nil
		}

		eng, err := engine.New(ctx, engine.Deps{
			Content:               concepts.NewMemoryStore(list),
			Events:                events,
			Snapshots:             s.SnapshotRepo(),
			Provider:              provider,
			Capacity:              cfg.CapacityConfig(),
			Grading:               cfg.GradingConfig(),
			MinCapacityForSandbox: cfg.Placement.MinCapacityForSandbox,
			Logger:                logger,
		})
		if err != nil {
			return err
		}

		if hourOfDay < 0 {
			hourOfDay = time.Now().Hour()
		}
		req := engine.BuildRequest{
			UserID:    userID,
			ProjectID: projectID,
			Signals: capacity.Signals{
				HoursSlept:     hoursSlept,
				HourOfDay:      hourOfDay,
				RecentSessions: recentSessions,
			},
			DidSkipPretest: skipPretest,
		}

		if len(targets) > 0 {
			m, err := eng.CheckPrerequisites(ctx, projectID, userID, targets)
			if err != nil {
				return fmt.Errorf("check prerequisites: %w", err)
			}
			fmt.Printf("Prerequisite check: %s\n\n", m.State())
		}

		sess, err := eng.BuildSession(ctx, req)
		if errors.Is(err, engine.ErrNothingToLearn) {
			fmt.Println("Nothing to learn right now: no due reviews and no eligible new concepts.")
			return nil
		}
		if err != nil {
			return err
		}

		printPlan(sess)

		// The plan is a preview; answers come in through the engine API, not
		// this command. Cancel so a later run starts fresh.
		return eng.Cancel(ctx)
	},
}

// printPlan renders the capacity summary and the item sequence.
func printPlan(sess *session.Session) {
	c := sess.Capacity
	fmt.Printf("Session %s\n", sess.ID)
	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("Capacity:   %d effective (base %d, circadian %.2f, sleep %.2f, fatigue %.2f)\n",
		c.EffectiveCapacity, c.BaseCapacity, c.CircadianModifier, c.SleepModifier, c.FatigueModifier)
	fmt.Printf("Load:       %.0f%% used", c.PercentageUsed)
	if c.Warning != capacity.WarningNone {
		fmt.Printf("  [%s]", c.Warning)
	}
	fmt.Println()
	if !c.CanLearnNew {
		fmt.Println("Note:       capacity below new-learning floor, review-only session")
	}
	if sess.SandboxDeferred {
		fmt.Println("Note:       sandbox practice deferred until capacity recovers")
	}
	fmt.Println(strings.Repeat("─", 64))

	for i, it := range sess.Items() {
		switch it.Kind {
		case session.ItemSynthesis:
			fmt.Printf("%2d. synthesis  connecting %s\n", i+1, strings.Join(it.ConceptIDs, ", "))
		case session.ItemSandbox:
			fmt.Printf("%2d. sandbox    %s/%s on %s\n", i+1,
				it.Exercise.InteractionType, it.Exercise.CognitiveType,
				strings.Join(it.ConceptIDs, ", "))
		default:
			fmt.Printf("%2d. %-10s %s\n", i+1, it.Kind, it.ConceptID())
		}
	}
}

func init() {
	sessionCmd.Flags().StringP("concepts", "c", "concepts.yaml", "Path to concept file")
	sessionCmd.Flags().StringP("user", "u", "default", "Learner ID")
	sessionCmd.Flags().StringP("project", "p", "default", "Project ID")
	sessionCmd.Flags().Float64("hours-slept", 8, "Hours slept last night")
	sessionCmd.Flags().Int("hour", -1, "Local hour of day (default: current hour)")
	sessionCmd.Flags().Int("recent-sessions", 0, "Sessions completed in the last 24h")
	sessionCmd.Flags().Bool("skip-pretest", false, "Record that the pretest offer was declined")
	sessionCmd.Flags().StringSlice("target", nil, "Target concept IDs for the prerequisite check")
}
