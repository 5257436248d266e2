// Package testutil provides shared test helpers for creating config files and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file, a deck directory with one two-card
// deck, and a sqlite database path under tmpDir. Returns the path to the
// generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	deckDir := filepath.Join(tmpDir, "decks")
	require.NoError(t, os.MkdirAll(deckDir, 0755))
	CreateDeckFile(t, deckDir, "biology", map[string]string{
		"bio-1": "What is a mitochondrion?",
		"bio-2": "What is osmosis?",
	})

	configContent := fmt.Sprintf(`decks:
  directory: %s
database:
  driver: sqlite
  path: %s
`,
		deckDir,
		filepath.Join(tmpDir, "data", "memorist.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateDeckFile writes a deck YAML file named <deckID>.yml with one card
// per entry in cards (card ID to front text). Card order in the file
// follows the sorted card IDs so fixtures are deterministic.
func CreateDeckFile(t *testing.T, deckDir, deckID string, cards map[string]string) {
	t.Helper()

	content := fmt.Sprintf("deck:\n  id: %s\n  title: %s\ncards:\n", deckID, deckID)
	ids := make([]string, 0, len(cards))
	for id := range cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		content += fmt.Sprintf("  - id: %s\n    front: %s\n    back: An answer to remember.\n", id, cards[id])
	}

	require.NoError(t, os.WriteFile(filepath.Join(deckDir, deckID+".yml"), []byte(content), 0644))
}
