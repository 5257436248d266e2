package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/memorist/memorist/internal/cli"
	"github.com/memorist/memorist/internal/config"
	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/scheduler"
)

// sessionFlags overrides the configured session bounds from the command
// line. A flag the user did not set keeps the configured value.
type sessionFlags struct {
	maxCards    int
	newLimit    int
	reviewLimit int
	noNewCards  bool
}

func (f *sessionFlags) register(flags *pflag.FlagSet) {
	flags.IntVar(&f.maxCards, "max-cards", 0, "Maximum number of cards in the session")
	flags.IntVar(&f.newLimit, "new", 0, "Maximum number of new cards in the session")
	flags.IntVar(&f.reviewLimit, "review", 0, "Maximum number of review cards in the session")
	flags.BoolVar(&f.noNewCards, "no-new", false, "Review due cards only, without introducing new cards")
}

func (f sessionFlags) apply(cfg config.SessionConfig) scheduler.SessionOptions {
	opts := scheduler.SessionOptions{
		MaxCards:        cfg.MaxCards,
		NewCardLimit:    cfg.NewCardLimit,
		ReviewCardLimit: cfg.ReviewCardLimit,
		IncludeNewCards: cfg.IncludeNewCards,
	}
	if f.maxCards > 0 {
		opts.MaxCards = f.maxCards
	}
	if f.newLimit > 0 {
		opts.NewCardLimit = f.newLimit
	}
	if f.reviewLimit > 0 {
		opts.ReviewCardLimit = f.reviewLimit
	}
	if f.noNewCards {
		opts.IncludeNewCards = false
	}
	return opts
}

func newStudyCommand() *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "study [deck]",
		Short: "Run an interactive study session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			decks, err := loadDecks(cfg)
			if err != nil {
				return err
			}

			pool := content.AllCardIDs(decks)
			if len(args) == 1 {
				deck, ok := content.FindDeck(decks, args[0])
				if !ok {
					return fmt.Errorf("unknown deck %q", args[0])
				}
				pool = deck.CardIDs()
			}

			ctx := cmd.Context()
			repository, closeDB, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeDB()
			}()

			composer := scheduler.NewSessionComposer(scheduler.NewMemoryModel(), scheduler.NewDueSelector(), nil)
			session := cli.NewStudySessionCLI(composer, repository, content.CardIndex(decks))
			return session.Run(ctx, pool, flags.apply(cfg.Session))
		},
	}
	flags.register(cmd.Flags())

	return cmd
}
