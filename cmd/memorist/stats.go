package main

import (
	"github.com/spf13/cobra"

	"github.com/memorist/memorist/internal/analytics"
	"github.com/memorist/memorist/internal/cli"
	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/scheduler"
)

func newStatsCommand() *cobra.Command {
	var days, top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study progress and analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			decks, err := loadDecks(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			repository, closeDB, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeDB()
			}()

			states := repository.LoadMemoryStates(ctx)
			sessions := repository.LoadSessions(ctx)

			composer := scheduler.NewSessionComposer(scheduler.NewMemoryModel(), scheduler.NewDueSelector(), nil)
			engine := analytics.NewAnalyticsEngine()
			pool := content.AllCardIDs(decks)
			selector := scheduler.NewDueSelector()

			cli.RenderStatsReport(cmd.OutOrStdout(), cli.StatsReport{
				Stats:     composer.StudyStats(states),
				Summary:   engine.StudySummary(sessions, days),
				WindowDay: days,
				NewCards:  len(selector.NewCards(pool, states, len(pool))),
				Struggle:  engine.StruggleCards(states, top),
				Mastered:  engine.MasteredCards(states, top),
				Cards:     content.CardIndex(decks),
			})
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "Number of days the session summary covers")
	cmd.Flags().IntVar(&top, "top", 5, "Number of struggle and mastered cards to list")

	return cmd
}
