package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/memorist/memorist/internal/cli"
	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/scheduler"
	"github.com/memorist/memorist/internal/setschedule"
)

func newDueCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List cards and sets that are due for review",
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
			if limit <= 0 {
				limit = len(states)
			}
			selector := scheduler.NewDueSelector()
			due := selector.CardsDueForReview(states, limit)

			sets := setschedule.NewService(setschedule.NewSetScheduler(), repository)
			dueSets := sets.DueForPractice(ctx)

			cli.RenderDueReport(cmd.OutOrStdout(), due, dueSets, content.CardIndex(decks), time.Now())
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of due cards to list (0 lists all)")

	return cmd
}
