package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/memorist/memorist/internal/assets"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter config file and example deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := "."
			if len(args) == 1 {
				directory = args[0]
			}

			deckDir := filepath.Join(directory, "decks")
			if err := os.MkdirAll(deckDir, 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", deckDir, err)
			}

			files := map[string]string{
				filepath.Join(directory, "config.yml"):     assets.StarterConfig,
				filepath.Join(deckDir, "starter-deck.yml"): assets.StarterDeck,
			}
			for path, body := range files {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists", path)
				}
				if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s: wrote config.yml and decks/starter-deck.yml.\n", directory)
			return nil
		},
	}
}
